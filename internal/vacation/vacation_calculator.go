package vacation

// DefaultEntitlementDays is used when the driver has no contract on
// file or no entitlement band matches their age.
const DefaultEntitlementDays = 25

// Balance is the vacation section of a timesheet report.
type Balance struct {
	EntitlementDays   int     `json:"entitlement_days"`
	EntitlementHours  float64 `json:"entitlement_hours"`
	HoursEarned       float64 `json:"hours_earned"`
	HoursUsed         float64 `json:"hours_used"`
	HoursRemaining    float64 `json:"hours_remaining"`
	TotalVacationDays float64 `json:"total_vacation_days"`
}

// EntitlementDays picks the band covering the report year whose age
// range contains the driver's age. hasContract false, or no matching
// band, falls back to the default.
func EntitlementDaysFor(bands []EntitlementBand, age, year int, hasContract bool) int {
	if !hasContract {
		return DefaultEntitlementDays
	}
	for _, b := range bands {
		if b.CoversYear(year) && b.MatchesAge(age) {
			return b.Days
		}
	}
	return DefaultEntitlementDays
}

// CalculateBalance folds the year's mutations into a balance. Legacy
// and current hours both count. A positive net is earned time, a
// negative net is time taken beyond what was earned.
func CalculateBalance(bands []EntitlementBand, mutations []Mutation, age, year int, hasContract bool) Balance {
	days := EntitlementDaysFor(bands, age, year, hasContract)

	var net float64
	for _, m := range mutations {
		net += m.TotalHours()
	}

	used := 0.0
	if net < 0 {
		used = -net
	}

	return Balance{
		EntitlementDays:   days,
		EntitlementHours:  float64(days) * 8,
		HoursEarned:       net + used,
		HoursUsed:         used,
		HoursRemaining:    net,
		TotalVacationDays: net / 8,
	}
}
