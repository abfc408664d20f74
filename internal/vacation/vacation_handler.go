package vacation

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
	l := zap.L().Named("vacation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("vacation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateMutation(c *gin.Context) {
	var req CreateMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create vacation mutation validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	resp, err := h.service.CreateMutation(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetBalance(c *gin.Context) {
	driverID := c.Param("driverID")
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be a number", nil)
		return
	}
	h.logger.Debug("http get vacation balance",
		zap.String("driver_id", driverID),
		zap.Int("year", year),
	)

	resp, err := h.service.GetBalance(c.Request.Context(), driverID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	vacations := r.Group("/vacations")
	{
		vacations.POST("/mutations", middleware.RateLimitByIP(1, 5), h.CreateMutation)
		vacations.GET("/driver/:driverID/balance", middleware.RateLimitByIP(3, 10), h.GetBalance)
	}
}
