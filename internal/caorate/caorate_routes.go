package caorate

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	rates := r.Group("/cao-rates")
	{
		rates.GET("", h.GetAll)
		rates.POST("", h.Create)
	}
}
