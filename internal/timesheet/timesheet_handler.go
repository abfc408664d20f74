package timesheet

import (
	"fmt"
	"net/http"
	"strconv"

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
	l := zap.L().Named("timesheet.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("timesheet request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetReport serves the timesheet for one driver as JSON, or as a PDF
// attachment when format=pdf is given.
func (h *Handler) GetReport(c *gin.Context) {
	driverID := c.Param("driverID")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be a number", nil)
		return
	}
	week, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "week must be a number", nil)
		return
	}
	periodNumber, err := strconv.Atoi(c.DefaultQuery("period", "0"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "period must be a number", nil)
		return
	}

	h.logger.Debug("http get timesheet",
		zap.String("driver_id", driverID),
		zap.Int("year", year),
		zap.Int("week", week),
		zap.Int("period", periodNumber),
	)

	report, err := h.service.GetReport(c.Request.Context(), ReportRequest{
		DriverID: driverID,
		Year:     year,
		Week:     week,
		Period:   periodNumber,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if c.Query("format") == "pdf" {
		pdf, err := h.service.RenderPDF(report)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		filename := fmt.Sprintf("urenstaat_%s_%d_p%d.pdf", report.Header.DriverNumber, year, report.Header.PeriodNumber)
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}
