package caorate

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"go-urenstaat/internal/shared/apperror"
)

// Provider is an immutable in-memory snapshot of the rate table, built
// once per report run so the engine never touches the database.
type Provider struct {
	periods []RatePeriod
}

func NewProvider(periods []RatePeriod) *Provider {
	sorted := make([]RatePeriod, len(periods))
	copy(sorted, periods)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return &Provider{periods: sorted}
}

// RateFor returns the rate row whose validity interval contains the date.
// A gap in the table is broken reference data: the error is fatal for the
// run and must not be retried.
func (p *Provider) RateFor(date time.Time) (RatePeriod, error) {
	for _, period := range p.periods {
		if period.Covers(date) {
			return period, nil
		}
	}
	return RatePeriod{}, apperror.New(
		apperror.CodeConfiguration,
		fmt.Sprintf("no CAO period covers %s", date.Format("2006-01-02")),
		http.StatusInternalServerError,
	)
}
