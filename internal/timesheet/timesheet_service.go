package timesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/driver"
	"go-urenstaat/internal/holiday"
	"go-urenstaat/internal/period"
	"go-urenstaat/internal/shift"
	timesheeterrors "go-urenstaat/internal/timesheet/errors"
	"go-urenstaat/internal/tvt"
	"go-urenstaat/internal/vacation"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const reportCacheTTL = 10 * time.Minute

func reportCacheKey(driverID string, year, periodNumber, week int) string {
	return fmt.Sprintf("timesheet:%s:%d:p%d:w%d", driverID, year, periodNumber, week)
}

type ReportRequest struct {
	DriverID string
	Year     int
	// Exactly one of Week and Period is set; the other is zero.
	Week   int
	Period int
}

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	GetReport(ctx context.Context, req ReportRequest) (Report, error)
	RenderPDF(report Report) ([]byte, error)
}

type service struct {
	drivers     driver.Service
	shifts      shift.Repository
	rates       caorate.Service
	holidays    holiday.Service
	vacations   vacation.Service
	tvt         tvt.Service
	rdb         *redis.Client
	sf          *singleflight.Group
	companyName string
	logger      *zap.Logger
}

func NewService(
	drivers driver.Service,
	shifts shift.Repository,
	rates caorate.Service,
	holidays holiday.Service,
	vacations vacation.Service,
	tvtService tvt.Service,
	rdb *redis.Client,
	companyName string,
) Service {
	return &service{
		drivers:     drivers,
		shifts:      shifts,
		rates:       rates,
		holidays:    holidays,
		vacations:   vacations,
		tvt:         tvtService,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		companyName: companyName,
		logger:      zap.L().Named("timesheet.service"),
	}
}

// resolveWeeks turns the week-or-period input into a concrete week list
// and the period number the report is labeled with.
func resolveWeeks(req ReportRequest) (int, []int, error) {
	if req.Year < 1000 || req.Year > 9999 {
		return 0, nil, timesheeterrors.ErrInvalidYear
	}
	switch {
	case req.Week != 0 && req.Period != 0, req.Week == 0 && req.Period == 0:
		return 0, nil, timesheeterrors.ErrWeekOrPeriodRequired
	case req.Week != 0:
		if req.Week < 1 || req.Week > 53 {
			return 0, nil, timesheeterrors.ErrInvalidWeek
		}
		return period.OfWeek(req.Week), []int{req.Week}, nil
	default:
		if req.Period < 1 || req.Period > 13 {
			return 0, nil, timesheeterrors.ErrInvalidPeriod
		}
		return req.Period, period.WeeksOf(req.Period), nil
	}
}

func (s *service) GetReport(ctx context.Context, req ReportRequest) (Report, error) {
	periodNumber, weeks, err := resolveWeeks(req)
	if err != nil {
		return Report{}, err
	}

	cacheKey := reportCacheKey(req.DriverID, req.Year, periodNumber, req.Week)
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var report Report
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return report, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		report, err := s.buildReport(ctx, req, periodNumber, weeks)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if jsonData, err := json.Marshal(report); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, reportCacheTTL)
			}
		}
		return report, nil
	})
	if err != nil {
		return Report{}, err
	}
	return v.(Report), nil
}

func (s *service) buildReport(ctx context.Context, req ReportRequest, periodNumber int, weeks []int) (Report, error) {
	contract, err := s.drivers.GetContract(ctx, req.DriverID)
	if err != nil {
		return Report{}, err
	}

	from := period.WeekStartDate(req.Year, weeks[0])
	to := period.WeekStartDate(req.Year, weeks[len(weeks)-1]).AddDate(0, 0, 6)

	rates, err := s.rates.SnapshotForRange(ctx, from, to)
	if err != nil {
		return Report{}, err
	}
	holidays, err := s.holidays.SnapshotForRange(ctx, from, to)
	if err != nil {
		return Report{}, err
	}
	shifts, err := s.shifts.FindByDriverAndRange(ctx, req.DriverID, from, to)
	if err != nil {
		return Report{}, err
	}
	vacationBalance, err := s.vacations.BalanceFor(ctx, contract, req.Year)
	if err != nil {
		return Report{}, err
	}
	tvtBalance, err := s.tvt.BalanceFor(ctx, req.DriverID, req.Year, int(to.Month()))
	if err != nil {
		return Report{}, err
	}

	report, err := BuildReport(BuildInput{
		CompanyName:  s.companyName,
		Contract:     contract,
		Year:         req.Year,
		PeriodNumber: periodNumber,
		Weeks:        weeks,
		Shifts:       shifts,
		Rates:        rates,
		Holidays:     holidays,
		Vacation:     vacationBalance,
		TimeForTime:  tvtBalance,
	})
	if err != nil {
		return Report{}, err
	}

	s.logger.Info("timesheet built",
		zap.String("driver_id", req.DriverID),
		zap.Int("year", req.Year),
		zap.Int("period", periodNumber),
		zap.Int("shifts", len(shifts)),
	)
	return report, nil
}

func (s *service) RenderPDF(report Report) ([]byte, error) {
	return buildTimesheetPDF(report)
}
