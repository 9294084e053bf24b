package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tasteofindiazambia/backend/pkg/resp"
	"github.com/tasteofindiazambia/backend/services"
)

type AnalyticsController struct {
	Service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// GET /api/admin/analytics/overview?restaurant_id=&days=
func (ac *AnalyticsController) Overview(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurant_id"))
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days <= 0 || days > 365 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	overview, err := ac.Service.Overview(uint(restID), since)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, overview)
}
