package driver

type CreateDriverRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	DriverNumber     string  `json:"driver_number"`
	BirthDate        *string `json:"birth_date"`
	EmploymentStart  string  `json:"employment_start" binding:"required"`
	EmploymentEnd    *string `json:"employment_end"`
	PercentWork      float64 `json:"percent_work"`
	HourlyRate       string  `json:"hourly_rate" binding:"required"`
	HomeWorkKm       float64 `json:"home_work_km"`
	CommuteAllowance bool    `json:"commute_allowance"`
	NightAllowance   bool    `json:"night_allowance"`
	NightWholeHours  bool    `json:"night_whole_hours"`
}

type DriverResponse struct {
	ID               string  `json:"id"`
	DriverNumber     string  `json:"driver_number"`
	FullName         string  `json:"full_name"`
	BirthDate        *string `json:"birth_date,omitempty"`
	EmploymentStart  string  `json:"employment_start"`
	EmploymentEnd    *string `json:"employment_end,omitempty"`
	PercentWork      float64 `json:"percent_work"`
	HourlyRate       string  `json:"hourly_rate"`
	HomeWorkKm       float64 `json:"home_work_km"`
	CommuteAllowance bool    `json:"commute_allowance"`
	NightAllowance   bool    `json:"night_allowance"`
	NightWholeHours  bool    `json:"night_whole_hours"`
}
