package timesheet

import (
	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/shift"

	"github.com/shopspring/decimal"
)

// UntaxedAllowance computes the untaxed per-diem for one booking under
// the CAO row valid at its date. Day types without a per-diem formula
// yield zero.
func UntaxedAllowance(s shift.Shift, rate caorate.RatePeriod, isHoliday bool) decimal.Decimal {
	switch s.Code {
	case shift.CodeOrdinary:
		if isHoliday {
			return decimal.Zero
		}
		return ordinaryDayAllowance(s.Start(), s.End(), rate)
	case shift.CodeSingleDay:
		return singleDayTripAllowance(s, rate)
	case shift.CodeMultiDayStart:
		return departureDayAllowance(s.Start(), rate)
	case shift.CodeMultiDayMid:
		if s.Option == shift.OptionStandOver && s.Start() == 0 && s.End() == 0 {
			return roundMoney(rate.StandOverRate)
		}
		return roundMoney(rate.MultiDayUntaxedRate)
	case shift.CodeMultiDayEnd:
		return arrivalDayAllowance(s.End(), rate)
	case shift.CodeConsignment:
		return consignmentAllowance(s, rate.ConsignmentUntaxedRate)
	default:
		return decimal.Zero
	}
}

// ordinaryDayAllowance bills a same-day shift. Afternoon starts bill the
// whole span at the standard rate; shifts running past 18:00 split at
// 18:00 into standard and after-17 portions.
func ordinaryDayAllowance(start, end float64, rate caorate.RatePeriod) decimal.Decimal {
	if end < start {
		return decimal.Zero
	}
	span := end - start
	switch {
	case start >= 14:
		return roundMoney(decimal.NewFromFloat(span).Mul(rate.StandardRate))
	case end >= 18:
		before := decimal.NewFromFloat(18 - start).Mul(rate.StandardRate)
		after := decimal.NewFromFloat(end - 18).Mul(rate.After17Rate)
		return roundMoney(before.Add(after))
	default:
		return roundMoney(decimal.NewFromFloat(span).Mul(rate.StandardRate))
	}
}

func singleDayTripAllowance(s shift.Shift, rate caorate.RatePeriod) decimal.Decimal {
	start, end := s.Start(), s.End()
	if start == 0 && end == 0 {
		return decimal.Zero
	}

	if end >= start {
		if end-start < 4 {
			return decimal.Zero
		}
		return ordinaryDayAllowance(start, end, rate)
	}

	// Crossing midnight.
	if start < 14 {
		hours := decimal.NewFromFloat((18 - start) + end)
		return roundMoney(hours.Mul(rate.StandardRate).Add(decimal.NewFromInt(6).Mul(rate.After17Rate)))
	}

	span := (24 - start) + end
	switch {
	case span < 4:
		return decimal.Zero
	case span < 12:
		return roundMoney(decimal.NewFromFloat(span).Mul(rate.StandardRate))
	default:
		base := decimal.NewFromFloat(span).Mul(rate.StandardRate)
		return roundMoney(base.Add(rate.Over12hLumpSum))
	}
}

func departureDayAllowance(start float64, rate caorate.RatePeriod) decimal.Decimal {
	if start <= 0 || start >= 24 {
		return decimal.Zero
	}
	if start < 17 {
		before := decimal.NewFromFloat(17 - start).Mul(rate.Before17Rate)
		after := decimal.NewFromInt(7).Mul(rate.After17Rate)
		return roundMoney(before.Add(after))
	}
	return roundMoney(decimal.NewFromFloat(24 - start).Mul(rate.Before17Rate))
}

func arrivalDayAllowance(end float64, rate caorate.RatePeriod) decimal.Decimal {
	switch {
	case end <= 12:
		return roundMoney(decimal.NewFromFloat(end).Mul(rate.Before17Rate))
	case end < 18:
		after := decimal.NewFromInt(6).Mul(rate.After17Rate)
		before := decimal.NewFromFloat(end - 6).Mul(rate.Before17Rate)
		return roundMoney(after.Add(before))
	default:
		late := decimal.NewFromFloat(end - 18).Mul(rate.After17Rate)
		day := decimal.NewFromInt(12).Mul(rate.Before17Rate)
		evening := decimal.NewFromInt(6).Mul(rate.After17Rate)
		return roundMoney(late.Add(day).Add(evening))
	}
}

// consignmentAllowance pays the on-call span per hour, capped at 8.
func consignmentAllowance(s shift.Shift, perHour decimal.Decimal) decimal.Decimal {
	span := spanHours(s.Start(), s.End())
	if span < 0 {
		span = 0
	}
	if span > 8 {
		span = 8
	}
	return roundMoney(decimal.NewFromFloat(span).Mul(perHour))
}
