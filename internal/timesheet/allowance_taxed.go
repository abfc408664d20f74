package timesheet

import (
	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/shift"

	"github.com/shopspring/decimal"
)

// TaxedAllowance is the wage-taxed counterpart of the per-diem: a flat
// day amount on multi-day trip days and a per-hour fee on consignment
// duty. All other day types have no taxed component.
func TaxedAllowance(s shift.Shift, rate caorate.RatePeriod) decimal.Decimal {
	switch s.Code {
	case shift.CodeMultiDayStart, shift.CodeMultiDayMid, shift.CodeMultiDayEnd:
		return roundMoney(rate.MultiDayTaxedRate)
	case shift.CodeConsignment:
		return consignmentAllowance(s, rate.ConsignmentTaxedRate)
	default:
		return decimal.Zero
	}
}
