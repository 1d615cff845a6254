package domain

import "time"

// Goal is the merchant intent a creative template is designed for.
type Goal string

const (
	GoalPromotion Goal = "promotion"
	GoalLaunch    Goal = "launch"
	GoalAwareness Goal = "awareness"
)

// Template is a pre-designed creative layout bound to a Goal.
type Template struct {
	ID    string `json:"id"`
	Goal  Goal   `json:"goal"`
	Label string `json:"label"`
}

func defaultTemplates() []Template {
	return []Template{
		{ID: "promo-flash", Goal: GoalPromotion, Label: "Flash sale"},
		{ID: "promo-coupon", Goal: GoalPromotion, Label: "Coupon"},
		{ID: "launch-new", Goal: GoalLaunch, Label: "New arrival"},
		{ID: "launch-opening", Goal: GoalLaunch, Label: "Grand opening"},
		{ID: "awareness-brand", Goal: GoalAwareness, Label: "Brand spotlight"},
	}
}

// Catalog holds the fixed sellable inventory dimensions. It is read-only
// once built and safe for concurrent use.
type Catalog struct {
	Placements    []PlacementOption `json:"placements"`
	Periods       []Period          `json:"periods"`
	Neighborhoods []Neighborhood    `json:"neighborhoods"`
	Templates     []Template        `json:"templates"`
}

// NewCatalog returns the default catalog with periods starting the month
// after asOf.
func NewCatalog(asOf time.Time) Catalog {
	return Catalog{
		Placements:    defaultPlacements(),
		Periods:       periodsAsOf(asOf),
		Neighborhoods: defaultNeighborhoods(),
		Templates:     defaultTemplates(),
	}
}

// AsOf returns a copy of c whose periods are the ones on sale at t.
func (c Catalog) AsOf(t time.Time) Catalog {
	c.Periods = periodsAsOf(t)
	return c
}

func (c Catalog) Placement(id PlacementID) (PlacementOption, bool) {
	for _, p := range c.Placements {
		if p.ID == id {
			return p, true
		}
	}
	return PlacementOption{}, false
}

func (c Catalog) Period(id string) (Period, bool) {
	for _, p := range c.Periods {
		if p.ID == id {
			return p, true
		}
	}
	return Period{}, false
}

func (c Catalog) Neighborhood(id string) (Neighborhood, bool) {
	for _, n := range c.Neighborhoods {
		if n.ID == id {
			return n, true
		}
	}
	return Neighborhood{}, false
}

func (c Catalog) Template(id string) (Template, bool) {
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
