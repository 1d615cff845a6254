package domain

import (
	"fmt"
	"strings"
	"time"
)

// PeriodKind distinguishes a single sellable window from a discounted package.
type PeriodKind string

const (
	PeriodBase    PeriodKind = "base"
	PeriodPackage PeriodKind = "package"
)

// Period is a sellable time window [StartDate, EndDate). Multiplier scales
// the placement unit price; package periods are additionally payable in
// Installments.
type Period struct {
	ID           string     `json:"id"`
	Kind         PeriodKind `json:"kind"`
	Label        string     `json:"label"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Days         int        `json:"days"`
	Multiplier   int64      `json:"multiplier"`
	Package      bool       `json:"package"`
	Installments int        `json:"installments"`
}

// Overlaps reports whether p and q share at least one instant.
func (p Period) Overlaps(q Period) bool {
	return p.StartDate.Before(q.EndDate) && q.StartDate.Before(p.EndDate)
}

// periodsAsOf builds the sellable periods starting on the first day of the
// month following asOf. IDs are stable for a given start month, so
// occupancy recorded against them stays meaningful across restarts.
func periodsAsOf(asOf time.Time) []Period {
	asOf = asOf.UTC()
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return []Period{
		newPeriod(PeriodBase, start),
		newPeriod(PeriodPackage, start),
	}
}

// ParsePeriodID rebuilds the window a period ID stands for, whether or not
// it is still on sale. IDs have the form <kind>-<YYYY-MM>.
func ParsePeriodID(id string) (Period, bool) {
	kind, month, ok := strings.Cut(id, "-")
	if !ok {
		return Period{}, false
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return Period{}, false
	}
	switch PeriodKind(kind) {
	case PeriodBase, PeriodPackage:
		return newPeriod(PeriodKind(kind), start), true
	default:
		return Period{}, false
	}
}

func newPeriod(kind PeriodKind, start time.Time) Period {
	months, label := 1, "1 month"
	if kind == PeriodPackage {
		months, label = 3, "3 months"
	}
	end := start.AddDate(0, months, 0)
	return Period{
		ID:           fmt.Sprintf("%s-%s", kind, start.Format("2006-01")),
		Kind:         kind,
		Label:        label,
		StartDate:    start,
		EndDate:      end,
		Days:         int(end.Sub(start).Hours() / 24),
		Multiplier:   int64(months),
		Package:      kind == PeriodPackage,
		Installments: months,
	}
}
