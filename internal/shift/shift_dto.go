package shift

type CreateShiftRequest struct {
	DriverID        string   `json:"driver_id" binding:"required,uuid"`
	ShiftDate       string   `json:"shift_date" binding:"required"`
	Code            string   `json:"code" binding:"required"`
	Option          string   `json:"option"`
	StartHour       *float64 `json:"start_hour"`
	EndHour         *float64 `json:"end_hour"`
	BreakHours      float64  `json:"break_hours"`
	CorrectionHours float64  `json:"correction_hours"`
	Kilometers      float64  `json:"kilometers"`
	FTEPercent      float64  `json:"fte_percent"`
	Remarks         *string  `json:"remarks"`
	ExternalRef     *string  `json:"external_ref"`
}

type ListShiftsFilterRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type ShiftResponse struct {
	ID              string   `json:"id"`
	DriverID        string   `json:"driver_id"`
	ShiftDate       string   `json:"shift_date"`
	Code            string   `json:"code"`
	RawCode         string   `json:"raw_code"`
	Option          string   `json:"option,omitempty"`
	StartHour       *float64 `json:"start_hour,omitempty"`
	EndHour         *float64 `json:"end_hour,omitempty"`
	BreakHours      float64  `json:"break_hours"`
	CorrectionHours float64  `json:"correction_hours"`
	Kilometers      float64  `json:"kilometers"`
	FTEPercent      float64  `json:"fte_percent"`
	TotalHours      float64  `json:"total_hours"`
	Remarks         *string  `json:"remarks,omitempty"`
	ExternalRef     *string  `json:"external_ref,omitempty"`
}
