package tvt

import (
	"net/http"
	"strconv"
	"time"

	"go-urenstaat/internal/middleware"
	"go-urenstaat/internal/shared/apperror"
	"go-urenstaat/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("tvt.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tvt.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetBalance(c *gin.Context) {
	driverID := c.Param("driverID")
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", "0"))
	if err != nil || month < 0 || month > 12 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be 1..12", nil)
		return
	}
	h.logger.Debug("http get tvt balance",
		zap.String("driver_id", driverID),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	resp, err := h.service.GetBalance(c.Request.Context(), driverID, year, month)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("tvt request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/tvt/driver/:driverID/balance", middleware.RateLimitByIP(3, 10), h.GetBalance)
}
