package timesheet_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-urenstaat/internal/timesheet"
	timesheeterrors "go-urenstaat/internal/timesheet/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	getReportFn func(ctx context.Context, req timesheet.ReportRequest) (timesheet.Report, error)
	renderPDFFn func(report timesheet.Report) ([]byte, error)
}

func (f *fakeService) GetReport(ctx context.Context, req timesheet.ReportRequest) (timesheet.Report, error) {
	return f.getReportFn(ctx, req)
}

func (f *fakeService) RenderPDF(report timesheet.Report) ([]byte, error) {
	return f.renderPDFFn(report)
}

func sampleReport() timesheet.Report {
	return timesheet.Report{
		Header: timesheet.Header{
			CompanyName:  "Transportbedrijf Jansen BV",
			DriverNumber: "CH-00007",
			DriverName:   "J. Jansen",
			Year:         2025,
			PeriodNumber: 3,
		},
	}
}

func TestHandler_GetReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	driverID := uuid.New().String()

	svc := &fakeService{
		getReportFn: func(ctx context.Context, req timesheet.ReportRequest) (timesheet.Report, error) {
			assert.Equal(t, driverID, req.DriverID)
			assert.Equal(t, 2025, req.Year)
			assert.Equal(t, 10, req.Week)
			assert.Equal(t, 0, req.Period)
			return sampleReport(), nil
		},
	}
	h := timesheet.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "driverID", Value: driverID}}
	c.Request = httptest.NewRequest(http.MethodGet, "/timesheets/driver/"+driverID+"?year=2025&week=10", nil)
	h.GetReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CH-00007")
}

func TestHandler_GetReportPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	driverID := uuid.New().String()

	svc := &fakeService{
		getReportFn: func(ctx context.Context, req timesheet.ReportRequest) (timesheet.Report, error) {
			return sampleReport(), nil
		},
		renderPDFFn: func(report timesheet.Report) ([]byte, error) {
			return []byte("%PDF-1.4 test"), nil
		},
	}
	h := timesheet.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "driverID", Value: driverID}}
	c.Request = httptest.NewRequest(http.MethodGet, "/timesheets/driver/"+driverID+"?year=2025&period=3&format=pdf", nil)
	h.GetReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "urenstaat_CH-00007_2025_p3.pdf")
	assert.Contains(t, w.Body.String(), "%PDF-1.4")
}

func TestHandler_GetReportValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("year must be numeric", func(t *testing.T) {
		h := timesheet.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/timesheets/driver/x?year=vorig", nil)
		h.GetReport(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "year must be a number")
	})

	t.Run("service errors map to http", func(t *testing.T) {
		svc := &fakeService{
			getReportFn: func(ctx context.Context, req timesheet.ReportRequest) (timesheet.Report, error) {
				return timesheet.Report{}, timesheeterrors.ErrWeekOrPeriodRequired
			},
		}
		h := timesheet.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/timesheets/driver/x?year=2025", nil)
		h.GetReport(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
