package set_day_enabled

// SetDayEnabledRequest HTTP request model
type SetDayEnabledRequest struct {
	Enabled bool `json:"enabled"`
}
