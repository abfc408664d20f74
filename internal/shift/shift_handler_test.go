package shift_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-urenstaat/internal/shift"
	shifterrors "go-urenstaat/internal/shift/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn func(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	listFn   func(ctx context.Context, driverID string, filter shift.ListShiftsFilterRequest) ([]shift.ShiftResponse, error)
}

func (f *fakeService) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeService) ListByDriver(ctx context.Context, driverID string, filter shift.ListShiftsFilterRequest) ([]shift.ShiftResponse, error) {
	return f.listFn(ctx, driverID, filter)
}

func TestHandler_CreateAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	driverID := uuid.New().String()

	svc := &fakeService{
		createFn: func(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
			assert.Equal(t, "dagrit", req.Code)
			return shift.ShiftResponse{ID: uuid.New().String(), DriverID: req.DriverID, Code: "ordinary"}, nil
		},
		listFn: func(ctx context.Context, id string, filter shift.ListShiftsFilterRequest) ([]shift.ShiftResponse, error) {
			assert.Equal(t, driverID, id)
			assert.Equal(t, "2025-03-03", filter.From)
			return []shift.ShiftResponse{{ID: uuid.New().String()}, {ID: uuid.New().String()}}, nil
		},
	}

	h := shift.NewHandler(svc)

	body := `{"driver_id":"` + driverID + `","shift_date":"2025-03-03","code":"dagrit"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/shifts", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "ordinary")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Params = gin.Params{{Key: "driverID", Value: driverID}}
	c2.Request = httptest.NewRequest(http.MethodGet, "/shifts/driver/"+driverID+"?from=2025-03-03&page=1&page_size=1", nil)
	h.ListByDriver(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"meta\"")
}

func TestHandler_CreateValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := shift.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/shifts", strings.NewReader(`{"code":"dagrit"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_ListServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		listFn: func(ctx context.Context, id string, filter shift.ListShiftsFilterRequest) ([]shift.ShiftResponse, error) {
			return nil, shifterrors.ErrInvalidDriverID
		},
	}
	h := shift.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "driverID", Value: "nope"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/shifts/driver/nope", nil)
	h.ListByDriver(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
