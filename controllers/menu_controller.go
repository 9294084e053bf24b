package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/pkg/resp"
	"github.com/tasteofindiazambia/backend/services"
	"gorm.io/gorm"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /api/restaurants/:id/menu
func (mc *MenuController) FullMenu(c *gin.Context) {
	restID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	view, err := mc.Service.FullMenu(c.Request.Context(), uint(restID))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, view)
}

// ---------------- Admin: categories ----------------

type CategoryReq struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
}

// POST /api/admin/menu/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := &entity.MenuCategory{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		RestaurantID: req.RestaurantID,
	}
	if err := mc.Service.CreateCategory(c.Request.Context(), cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

type UpdateCategoryReq struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
}

// PATCH /api/admin/menu/categories/:id
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	var req UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	affected, err := mc.Service.UpdateCategory(c.Request.Context(), uint(id), req.RestaurantID, updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /api/admin/menu/categories/:id?restaurant_id=
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	restID, _ := strconv.Atoi(c.Query("restaurant_id"))

	affected, err := mc.Service.DeleteCategory(c.Request.Context(), uint(id), uint(restID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Admin: items ----------------

type MenuItemReq struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"min=0"`
	DynamicPricing  bool    `json:"dynamic_pricing"`
	PackagingPrice  float64 `json:"packaging_price" binding:"min=0"`
	Available       *bool   `json:"available"`
	PreparationTime int     `json:"preparation_time"`
	MenuCategoryID  uint    `json:"menu_category_id" binding:"required"`
	RestaurantID    uint    `json:"restaurant_id" binding:"required"`
}

// GET /api/admin/menu/items?restaurant_id=
func (mc *MenuController) ListItems(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurant_id"))
	items, err := mc.Service.ListItems(uint(restID), false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /api/admin/menu/items
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := &entity.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DynamicPricing:  req.DynamicPricing,
		PackagingPrice:  req.PackagingPrice,
		Available:       available,
		PreparationTime: req.PreparationTime,
		MenuCategoryID:  req.MenuCategoryID,
		RestaurantID:    req.RestaurantID,
	}
	if err := mc.Service.CreateItem(c.Request.Context(), item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type UpdateMenuItemReq struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DynamicPricing  *bool    `json:"dynamic_pricing"`
	PackagingPrice  *float64 `json:"packaging_price"`
	Available       *bool    `json:"available"`
	PreparationTime *int     `json:"preparation_time"`
	MenuCategoryID  *uint    `json:"menu_category_id"`
}

// PATCH /api/admin/menu/items/:id
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := mc.Service.GetItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			resp.BadRequest(c, "price must not be negative")
			return
		}
		updates["price"] = *req.Price
	}
	if req.DynamicPricing != nil {
		updates["dynamic_pricing"] = *req.DynamicPricing
	}
	if req.PackagingPrice != nil {
		if *req.PackagingPrice < 0 {
			resp.BadRequest(c, "packaging_price must not be negative")
			return
		}
		updates["packaging_price"] = *req.PackagingPrice
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.PreparationTime != nil {
		updates["preparation_time"] = *req.PreparationTime
	}
	if req.MenuCategoryID != nil {
		updates["menu_category_id"] = *req.MenuCategoryID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if _, err := mc.Service.UpdateItem(c.Request.Context(), uint(id), item.RestaurantID, updates); err != nil {
		resp.ServerError(c, err)
		return
	}

	item, err = mc.Service.GetItem(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/admin/menu/items/:id
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := mc.Service.GetItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if _, err := mc.Service.DeleteItem(c.Request.Context(), uint(id), item.RestaurantID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
