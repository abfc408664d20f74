package timesheet

import (
	"strconv"

	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/shift"

	"github.com/shopspring/decimal"
)

// HomeWorkDistance returns the reimbursable one-way commute distance:
// zero below the CAO minimum, capped at max minus min above the maximum,
// the excess over the minimum in between.
func HomeWorkDistance(enabled bool, distance, minKm, maxKm float64) float64 {
	switch {
	case !enabled, distance < minKm:
		return 0
	case distance > maxKm:
		return maxKm - minKm
	default:
		return distance - minKm
	}
}

// extraKmSkip lists day types whose booked kilometers are reimbursed as
// driven, with no commute component on top.
var extraKmSkip = map[shift.Code]bool{
	shift.CodeMultiDayMid: true,
	shift.CodeVacation:    true,
	shift.CodeSick:        true,
	shift.CodeTimeForTime: true,
	shift.CodeZero:        true,
}

// extraKmNoCommute lists day types that do involve driving but whose
// commute is already covered elsewhere.
var extraKmNoCommute = map[shift.Code]bool{
	shift.CodeConsignment: true,
	shift.CodeCourse:      true,
}

// ExtraKilometers reimburses the booked kilometers and, on regular
// driving days with worked hours, adds the commute: one way on
// departure and arrival days, both ways otherwise. commuteKm is the
// reimbursable one-way distance from HomeWorkDistance, already clamped
// against the CAO band. Legacy numeric codes strictly between 18 and 25
// keep the no-commute treatment they had in the old planning system.
func ExtraKilometers(s shift.Shift, commuteKm float64, rate caorate.RatePeriod) decimal.Decimal {
	base := roundMoney(decimal.NewFromFloat(s.Kilometers).Mul(rate.KilometerRate))

	if extraKmSkip[s.Code] || s.Option == shift.OptionStandOver || s.Option == shift.OptionNoCommute {
		return base
	}
	if extraKmNoCommute[s.Code] || rawCodeInNoCommuteRange(s.RawCode) {
		return base
	}
	if s.Hours() <= 0 {
		return base
	}

	commute := decimal.NewFromFloat(commuteKm).Mul(rate.KilometerRate)
	if s.Code != shift.CodeMultiDayStart && s.Code != shift.CodeMultiDayEnd {
		commute = commute.Mul(decimal.NewFromInt(2))
	}
	return roundMoney(base.Add(commute))
}

func rawCodeInNoCommuteRange(raw string) bool {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return false
	}
	return v > 18 && v < 25
}
