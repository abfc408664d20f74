package caorate

type CreateRatePeriodRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`

	StandardRate string `json:"standard_rate" binding:"required"`
	After17Rate  string `json:"after17_rate" binding:"required"`
	Before17Rate string `json:"before17_rate" binding:"required"`

	MultiDayUntaxedRate string `json:"multi_day_untaxed_rate" binding:"required"`
	MultiDayTaxedRate   string `json:"multi_day_taxed_rate" binding:"required"`
	StandOverRate       string `json:"stand_over_rate" binding:"required"`

	Over12hLumpSum string `json:"over12h_lump_sum" binding:"required"`

	ConsignmentUntaxedRate string `json:"consignment_untaxed_rate" binding:"required"`
	ConsignmentTaxedRate   string `json:"consignment_taxed_rate" binding:"required"`

	CommuteMinKm  float64 `json:"commute_min_km"`
	CommuteMaxKm  float64 `json:"commute_max_km"`
	KilometerRate string  `json:"kilometer_rate" binding:"required"`

	NightStart         float64 `json:"night_start"`
	NightEnd           float64 `json:"night_end"`
	NightSurchargeRate string  `json:"night_surcharge_rate" binding:"required"`
}

type RatePeriodResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	StandardRate string `json:"standard_rate"`
	After17Rate  string `json:"after17_rate"`
	Before17Rate string `json:"before17_rate"`

	MultiDayUntaxedRate string `json:"multi_day_untaxed_rate"`
	MultiDayTaxedRate   string `json:"multi_day_taxed_rate"`
	StandOverRate       string `json:"stand_over_rate"`

	Over12hLumpSum string `json:"over12h_lump_sum"`

	ConsignmentUntaxedRate string `json:"consignment_untaxed_rate"`
	ConsignmentTaxedRate   string `json:"consignment_taxed_rate"`

	CommuteMinKm  float64 `json:"commute_min_km"`
	CommuteMaxKm  float64 `json:"commute_max_km"`
	KilometerRate string  `json:"kilometer_rate"`

	NightStart         float64 `json:"night_start"`
	NightEnd           float64 `json:"night_end"`
	NightSurchargeRate string  `json:"night_surcharge_rate"`
}
