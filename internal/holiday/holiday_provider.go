package holiday

import "time"

// Provider answers "is this date a public holiday, and what is it
// called". The engine only sees this interface; the concrete calendar is
// injected by the caller.
type Provider interface {
	NameOf(date time.Time) (string, bool)
}

// MapProvider is an immutable snapshot keyed by YYYY-MM-DD.
type MapProvider struct {
	names map[string]string
}

func NewMapProvider(rows []Holiday) *MapProvider {
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[r.HolidayDate.Format("2006-01-02")] = r.Name
	}
	return &MapProvider{names: names}
}

func (p *MapProvider) NameOf(date time.Time) (string, bool) {
	name, ok := p.names[date.Format("2006-01-02")]
	return name, ok
}
