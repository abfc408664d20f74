package timesheet

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/driver"
	"go-urenstaat/internal/holiday"
	"go-urenstaat/internal/shift"
	timesheeterrors "go-urenstaat/internal/timesheet/errors"
	"go-urenstaat/internal/tvt"
	"go-urenstaat/internal/vacation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriverService struct {
	getContractFn func(ctx context.Context, id string) (driver.Driver, error)
}

func (f *fakeDriverService) Create(ctx context.Context, req driver.CreateDriverRequest) (driver.DriverResponse, error) {
	return driver.DriverResponse{}, nil
}
func (f *fakeDriverService) GetAll(ctx context.Context) ([]driver.DriverResponse, error) {
	return nil, nil
}
func (f *fakeDriverService) GetByID(ctx context.Context, id string) (driver.DriverResponse, error) {
	return driver.DriverResponse{}, nil
}
func (f *fakeDriverService) GetContract(ctx context.Context, id string) (driver.Driver, error) {
	return f.getContractFn(ctx, id)
}

type fakeShiftRepo struct {
	findByDriverAndRangeFn func(ctx context.Context, driverID string, from, to time.Time) ([]shift.Shift, error)
}

func (f *fakeShiftRepo) WithTx(tx *sql.Tx) shift.Repository               { return f }
func (f *fakeShiftRepo) Create(ctx context.Context, s *shift.Shift) error { return nil }
func (f *fakeShiftRepo) FindByDriverAndRange(ctx context.Context, driverID string, from, to time.Time) ([]shift.Shift, error) {
	return f.findByDriverAndRangeFn(ctx, driverID, from, to)
}
func (f *fakeShiftRepo) FindTimeForTimeByDriverAndYear(ctx context.Context, driverID string, year int) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) FindByExternalRef(ctx context.Context, ref string) (*shift.Shift, error) {
	return nil, nil
}

type fakeRateService struct{}

func (fakeRateService) Create(ctx context.Context, req caorate.CreateRatePeriodRequest) (caorate.RatePeriodResponse, error) {
	return caorate.RatePeriodResponse{}, nil
}
func (fakeRateService) GetAll(ctx context.Context) ([]caorate.RatePeriodResponse, error) {
	return nil, nil
}
func (fakeRateService) SnapshotForRange(ctx context.Context, from, to time.Time) (*caorate.Provider, error) {
	return caorate.NewProvider([]caorate.RatePeriod{testRate()}), nil
}

type fakeHolidayService struct{}

func (fakeHolidayService) GetByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	return nil, nil
}
func (fakeHolidayService) SnapshotForRange(ctx context.Context, from, to time.Time) (holiday.Provider, error) {
	return holiday.NewMapProvider(nil), nil
}

type fakeVacationService struct{}

func (fakeVacationService) CreateMutation(ctx context.Context, req vacation.CreateMutationRequest) (vacation.MutationResponse, error) {
	return vacation.MutationResponse{}, nil
}
func (fakeVacationService) GetBalance(ctx context.Context, driverID string, year int) (vacation.BalanceResponse, error) {
	return vacation.BalanceResponse{}, nil
}
func (fakeVacationService) BalanceFor(ctx context.Context, contract driver.Driver, year int) (vacation.Balance, error) {
	return vacation.Balance{EntitlementDays: 25, EntitlementHours: 200}, nil
}

type fakeTvTService struct{}

func (fakeTvTService) GetBalance(ctx context.Context, driverID string, year, upToMonth int) (tvt.BalanceResponse, error) {
	return tvt.BalanceResponse{}, nil
}
func (fakeTvTService) BalanceFor(ctx context.Context, driverID string, year, upToMonth int) (tvt.Balance, error) {
	return tvt.Balance{HoursSaved: 4, MonthEndBalance: 4}, nil
}

func newTestService(shifts []shift.Shift) Service {
	return NewService(
		&fakeDriverService{getContractFn: func(ctx context.Context, id string) (driver.Driver, error) {
			return testContract(), nil
		}},
		&fakeShiftRepo{findByDriverAndRangeFn: func(ctx context.Context, driverID string, from, to time.Time) ([]shift.Shift, error) {
			return shifts, nil
		}},
		fakeRateService{},
		fakeHolidayService{},
		fakeVacationService{},
		fakeTvTService{},
		nil,
		"Transportbedrijf Jansen BV",
	)
}

func TestResolveWeeks(t *testing.T) {
	t.Run("single week", func(t *testing.T) {
		p, weeks, err := resolveWeeks(ReportRequest{Year: 2025, Week: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, p)
		assert.Equal(t, []int{10}, weeks)
	})

	t.Run("period two is weeks 5 through 8", func(t *testing.T) {
		p, weeks, err := resolveWeeks(ReportRequest{Year: 2025, Period: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, p)
		assert.Equal(t, []int{5, 6, 7, 8}, weeks)
	})

	t.Run("validation", func(t *testing.T) {
		_, _, err := resolveWeeks(ReportRequest{Year: 2025})
		assert.ErrorIs(t, err, timesheeterrors.ErrWeekOrPeriodRequired)

		_, _, err = resolveWeeks(ReportRequest{Year: 2025, Week: 3, Period: 1})
		assert.ErrorIs(t, err, timesheeterrors.ErrWeekOrPeriodRequired)

		_, _, err = resolveWeeks(ReportRequest{Year: 2025, Week: 54})
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidWeek)

		_, _, err = resolveWeeks(ReportRequest{Year: 2025, Week: -3})
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidWeek)

		_, _, err = resolveWeeks(ReportRequest{Year: 2025, Period: 14})
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidPeriod)

		_, _, err = resolveWeeks(ReportRequest{Year: 2025, Period: -1})
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidPeriod)

		_, _, err = resolveWeeks(ReportRequest{Year: 25, Week: 10})
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidYear)
	})
}

func TestService_GetReport(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	svc := newTestService([]shift.Shift{{
		ShiftDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		Code:      shift.CodeOrdinary,
		StartHour: f(8), EndHour: f(16.5), BreakHours: 0.5,
	}})

	report, err := svc.GetReport(context.Background(), ReportRequest{
		DriverID: testContract().ID.String(),
		Year:     2025,
		Week:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Transportbedrijf Jansen BV", report.Header.CompanyName)
	assert.Equal(t, 3, report.Header.PeriodNumber)
	assert.Equal(t, 8.0, report.Hours.TotalHours)
	assert.Equal(t, 25, report.Vacation.EntitlementDays)
	assert.Equal(t, 4.0, report.TimeForTime.HoursSaved)
}

func TestService_RenderPDF(t *testing.T) {
	svc := newTestService(nil)
	report, err := svc.GetReport(context.Background(), ReportRequest{
		DriverID: testContract().ID.String(),
		Year:     2025,
		Period:   3,
	})
	require.NoError(t, err)

	pdf, err := svc.RenderPDF(report)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF-1.4", string(pdf[:8]))
}
