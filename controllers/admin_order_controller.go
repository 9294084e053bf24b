package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/pkg/resp"
	"github.com/tasteofindiazambia/backend/services"
)

// AdminOrderController is the staff/admin order surface: listing,
// detail and status transitions.
type AdminOrderController struct {
	Service *services.OrderService
}

func NewAdminOrderController(service *services.OrderService) *AdminOrderController {
	return &AdminOrderController{Service: service}
}

// GET /api/admin/orders?restaurant_id=&status=&page=&limit=
func (oc *AdminOrderController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurant_id"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "unknown status "+s)
			return
		}
		status = &st
	}

	items, total, err := oc.Service.List(uint(restID), status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /api/admin/orders/:id
func (oc *AdminOrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := oc.Service.Get(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}

type UpdateOrderStatusReq struct {
	Status                   string `json:"status" binding:"required"`
	EstimatedPreparationTime *int   `json:"estimated_preparation_time"`
}

// PUT /api/admin/orders/:id
func (oc *AdminOrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	to := entity.OrderStatus(req.Status)
	if !to.Valid() {
		resp.BadRequest(c, "unknown status "+req.Status)
		return
	}

	order, err := oc.Service.UpdateStatus(uint(id), to, req.EstimatedPreparationTime)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, order)
}
