package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/pkg/resp"
	"github.com/tasteofindiazambia/backend/repository"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantController(repo *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: repo}
}

// GET /api/restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	restaurants, err := rc.Repo.List(true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": restaurants})
}

// GET /api/restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := rc.Repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// ---------------- Admin ----------------

type RestaurantReq struct {
	Name                string  `json:"name" binding:"required"`
	Address             string  `json:"address"`
	Phone               string  `json:"phone"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	DeliveryFeePerKm    float64 `json:"delivery_fee_per_km" binding:"min=0"`
	DeliveryTimeMinutes int     `json:"delivery_time_minutes"`
	MinDeliveryOrder    float64 `json:"min_delivery_order" binding:"min=0"`
	MaxDeliveryRadiusKm float64 `json:"max_delivery_radius_km" binding:"min=0"`
}

// POST /api/admin/restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var req RestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest := &entity.Restaurant{
		Name:                req.Name,
		Address:             req.Address,
		Phone:               req.Phone,
		Active:              true,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		DeliveryFeePerKm:    req.DeliveryFeePerKm,
		DeliveryTimeMinutes: req.DeliveryTimeMinutes,
		MinDeliveryOrder:    req.MinDeliveryOrder,
		MaxDeliveryRadiusKm: req.MaxDeliveryRadiusKm,
	}
	if err := rc.Repo.Create(rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rest)
}

type UpdateRestaurantReq struct {
	Name                *string  `json:"name"`
	Address             *string  `json:"address"`
	Phone               *string  `json:"phone"`
	Active              *bool    `json:"active"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	DeliveryFeePerKm    *float64 `json:"delivery_fee_per_km"`
	DeliveryTimeMinutes *int     `json:"delivery_time_minutes"`
	MinDeliveryOrder    *float64 `json:"min_delivery_order"`
	MaxDeliveryRadiusKm *float64 `json:"max_delivery_radius_km"`
}

// PATCH /api/admin/restaurants/:id
func (rc *RestaurantController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if _, err := rc.Repo.Get(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.DeliveryFeePerKm != nil {
		if *req.DeliveryFeePerKm < 0 {
			resp.BadRequest(c, "delivery_fee_per_km must not be negative")
			return
		}
		updates["delivery_fee_per_km"] = *req.DeliveryFeePerKm
	}
	if req.DeliveryTimeMinutes != nil {
		updates["delivery_time_minutes"] = *req.DeliveryTimeMinutes
	}
	if req.MinDeliveryOrder != nil {
		if *req.MinDeliveryOrder < 0 {
			resp.BadRequest(c, "min_delivery_order must not be negative")
			return
		}
		updates["min_delivery_order"] = *req.MinDeliveryOrder
	}
	if req.MaxDeliveryRadiusKm != nil {
		if *req.MaxDeliveryRadiusKm < 0 {
			resp.BadRequest(c, "max_delivery_radius_km must not be negative")
			return
		}
		updates["max_delivery_radius_km"] = *req.MaxDeliveryRadiusKm
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := rc.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	rest, err := rc.Repo.Get(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}
