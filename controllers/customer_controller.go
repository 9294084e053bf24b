package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tasteofindiazambia/backend/pkg/resp"
	"github.com/tasteofindiazambia/backend/services"
	"gorm.io/gorm"
)

// CustomerController exposes customer records and their running
// aggregates to the back office.
type CustomerController struct {
	Service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{Service: service}
}

// GET /api/admin/customers?search=&page=&limit=
func (cc *CustomerController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := cc.Service.List(c.Query("search"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /api/admin/customers/:id
func (cc *CustomerController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid customer id")
		return
	}

	customer, err := cc.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "customer not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, customer)
}
