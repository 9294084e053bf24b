package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tasteofindiazambia/backend/pkg/resp"
	"github.com/tasteofindiazambia/backend/services"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

type CreateReservationReq struct {
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	CustomerEmail   string    `json:"customer_email"`
	RestaurantID    uint      `json:"restaurant_id" binding:"required"`
	DateTime        time.Time `json:"date_time" binding:"required"`
	PartySize       int       `json:"party_size" binding:"required,min=1"`
	Occasion        string    `json:"occasion"`
	SpecialRequests string    `json:"special_requests"`
}

// POST /api/reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var req CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := rc.Service.Create(&services.CreateReservationInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		RestaurantID:    req.RestaurantID,
		DateTime:        req.DateTime,
		PartySize:       req.PartySize,
		Occasion:        req.Occasion,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /api/admin/reservations?restaurant_id=&status=&page=&limit=
func (rc *ReservationController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurant_id"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := rc.Service.List(uint(restID), c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

type UpdateReservationReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/admin/reservations/:id
func (rc *ReservationController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid reservation id")
		return
	}

	var req UpdateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := rc.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, res)
}
