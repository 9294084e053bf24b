package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"github.com/tasteofindiazambia/backend/pkg/resp"
	"github.com/tasteofindiazambia/backend/services"
)

// OrderController is the customer-facing order surface: checkout and
// token-based tracking, no authentication.
type OrderController struct {
	Service *services.OrderService
	BaseURL string
}

func NewOrderController(service *services.OrderService, baseURL string) *OrderController {
	return &OrderController{Service: service, BaseURL: baseURL}
}

type OrderItemReq struct {
	MenuItemID          uint    `json:"menu_item_id" binding:"required"`
	Quantity            int     `json:"quantity" binding:"required,min=1"`
	Grams               float64 `json:"grams"`
	SpecialInstructions string  `json:"special_instructions"`
}

type CreateOrderReq struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	OrderType    string `json:"order_type" binding:"required,oneof=pickup delivery"`

	PaymentMethod       string `json:"payment_method"`
	SpecialInstructions string `json:"special_instructions"`

	Items []OrderItemReq `json:"items" binding:"required,min=1,dive"`

	DeliveryAddress    string   `json:"delivery_address"`
	DeliveryLatitude   *float64 `json:"delivery_latitude"`
	DeliveryLongitude  *float64 `json:"delivery_longitude"`
	DeliveryDistanceKm *float64 `json:"delivery_distance_km"`
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := &services.CreateOrderInput{
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerEmail:       req.CustomerEmail,
		RestaurantID:        req.RestaurantID,
		OrderType:           req.OrderType,
		PaymentMethod:       req.PaymentMethod,
		SpecialInstructions: req.SpecialInstructions,
		DeliveryAddress:     req.DeliveryAddress,
		DeliveryLatitude:    req.DeliveryLatitude,
		DeliveryLongitude:   req.DeliveryLongitude,
		DeliveryDistanceKm:  req.DeliveryDistanceKm,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, services.OrderItemInput{
			MenuItemID:          it.MenuItemID,
			Quantity:            it.Quantity,
			Grams:               it.Grams,
			SpecialInstructions: it.SpecialInstructions,
		})
	}

	detail, err := oc.Service.Create(in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, detail)
}

// GET /api/orders/token/:token
func (oc *OrderController) GetByToken(c *gin.Context) {
	detail, err := oc.Service.GetByToken(c.Param("token"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /api/orders/token/:token/qr
// Returns a PNG QR code pointing at the tracking page for this order.
func (oc *OrderController) TokenQR(c *gin.Context) {
	token := c.Param("token")
	detail, err := oc.Service.GetByToken(token)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	url := fmt.Sprintf("%s/track?token=%s", oc.BaseURL, detail.Order.OrderToken)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
