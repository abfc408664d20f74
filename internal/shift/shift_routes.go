package shift

import (
	"go-urenstaat/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	shifts := r.Group("/shifts")
	{
		shifts.POST("", middleware.Idempotency(rdb), h.Create)
		shifts.GET("/driver/:driverID", h.ListByDriver)
	}
}
