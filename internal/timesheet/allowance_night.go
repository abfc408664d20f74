package timesheet

import (
	"math"

	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/driver"
	"go-urenstaat/internal/shift"

	"github.com/shopspring/decimal"
)

// NightAllowance computes the night surcharge for one booking: the hours
// inside the CAO night window, paid at the driver's hourly rate times
// the surcharge percentage. Drivers without the night allowance in their
// contract get zero. Returns the amount and the counted night hours.
func NightAllowance(s shift.Shift, contract driver.Driver, rate caorate.RatePeriod) (decimal.Decimal, float64) {
	if !contract.NightAllowance {
		return decimal.Zero, 0
	}
	if s.StartHour == nil || s.EndHour == nil {
		return decimal.Zero, 0
	}

	nightHours := NightOverlap(s.Start(), s.End(), rate.NightStart, rate.NightEnd)
	if contract.NightWholeHours {
		nightHours = math.Floor(nightHours)
	}
	if nightHours <= 0 {
		return decimal.Zero, 0
	}

	amount := decimal.NewFromFloat(nightHours).
		Mul(contract.HourlyRate).
		Mul(rate.NightSurchargeRate)
	return roundMoney(amount), nightHours
}
