package driver

import (
	"go-urenstaat/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	drivers := r.Group("/drivers")
	{
		drivers.GET("", middleware.RateLimitByIP(3, 10), h.GetAll)
		drivers.GET("/:driverID", middleware.RateLimitByIP(3, 10), h.GetById)
		drivers.POST("", middleware.RateLimitByIP(0.5, 2), h.Create)
	}
}
