package domain

// OccupancyRecord states that a neighborhood is already sold for a period.
// The sold window is the one PeriodID stands for, see ParsePeriodID.
type OccupancyRecord struct {
	NeighborhoodID string `json:"neighborhood_id"`
	PeriodID       string `json:"period_id"`
}
