// Package inventory answers availability questions about (neighborhood,
// period) slots. A slot is either sold or free; there are no holds.
package inventory

import (
	"bairro-ads/internal/core/domain"
)

// Occupancy holds the sold windows of each neighborhood.
type Occupancy map[string][]domain.Period

// NewOccupancy indexes records for lookup. A record whose period ID does
// not parse only conflicts with that exact ID.
func NewOccupancy(records []domain.OccupancyRecord) Occupancy {
	occ := make(Occupancy, len(records))
	for _, r := range records {
		p, ok := domain.ParsePeriodID(r.PeriodID)
		if !ok {
			p = domain.Period{ID: r.PeriodID}
		}
		occ[r.NeighborhoodID] = append(occ[r.NeighborhoodID], p)
	}
	return occ
}

// Sold reports whether the neighborhood is taken for any instant of p.
// Base and package windows starting in the same month overlap, as does a
// package with the base months it spans.
func (o Occupancy) Sold(neighborhoodID string, p domain.Period) bool {
	for _, sold := range o[neighborhoodID] {
		if sold.ID == p.ID || sold.Overlaps(p) {
			return true
		}
	}
	return false
}

// Availability is the answer for a single neighborhood.
type Availability struct {
	Available          bool            `json:"available"`
	ConflictingPeriods []domain.Period `json:"conflicting_periods,omitempty"`
}

// IsNeighborhoodAvailable checks neighborhoodID against every candidate
// period. With no periods selected there is nothing to conflict with.
func IsNeighborhoodAvailable(occ Occupancy, neighborhoodID string, periods []domain.Period) Availability {
	var conflicts []domain.Period
	for _, p := range periods {
		if occ.Sold(neighborhoodID, p) {
			conflicts = append(conflicts, p)
		}
	}
	return Availability{Available: len(conflicts) == 0, ConflictingPeriods: conflicts}
}

// SelectAllAvailable returns every catalog neighborhood free for periods,
// in catalog order. It is computed from occ on each call.
func SelectAllAvailable(neighborhoods []domain.Neighborhood, occ Occupancy, periods []domain.Period) []domain.Neighborhood {
	out := make([]domain.Neighborhood, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		if IsNeighborhoodAvailable(occ, n.ID, periods).Available {
			out = append(out, n)
		}
	}
	return out
}

// NeighborhoodConflict flags a selected neighborhood that became sold for
// the selected periods.
type NeighborhoodConflict struct {
	NeighborhoodID string          `json:"neighborhood_id"`
	Periods        []domain.Period `json:"periods"`
}

// Conflicts re-checks an existing selection. Conflicting neighborhoods are
// reported, never removed from the selection.
func Conflicts(occ Occupancy, selected []string, periods []domain.Period) []NeighborhoodConflict {
	var out []NeighborhoodConflict
	for _, id := range selected {
		a := IsNeighborhoodAvailable(occ, id, periods)
		if !a.Available {
			out = append(out, NeighborhoodConflict{NeighborhoodID: id, Periods: a.ConflictingPeriods})
		}
	}
	return out
}
