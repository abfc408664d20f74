package holiday

import (
	"net/http"
	"strconv"
	"time"

	"go-urenstaat/internal/shared/apperror"
	"go-urenstaat/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil || year < 2000 || year > 2100 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "year must be a valid calendar year")
		return
	}

	resp, err := h.service.GetByYear(c.Request.Context(), year)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	holidays := r.Group("/holidays")
	{
		holidays.GET("", h.GetByYear)
	}
}
