package timesheet

import (
	"go-urenstaat/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/timesheets/driver/:driverID", middleware.RateLimitByDriver(2, 5), h.GetReport)
}
