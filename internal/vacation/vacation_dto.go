package vacation

type CreateMutationRequest struct {
	DriverID     string  `json:"driver_id" binding:"required,uuid"`
	MutationDate string  `json:"mutation_date" binding:"required"`
	Hours        float64 `json:"hours" binding:"required"`
	Description  string  `json:"description"`
}

type MutationResponse struct {
	ID           string  `json:"id"`
	DriverID     string  `json:"driver_id"`
	MutationDate string  `json:"mutation_date"`
	Hours        float64 `json:"hours"`
	LegacyHours  float64 `json:"legacy_hours"`
	Description  string  `json:"description,omitempty"`
}

type BalanceResponse struct {
	DriverID string  `json:"driver_id"`
	Year     int     `json:"year"`
	Balance  Balance `json:"balance"`
}
