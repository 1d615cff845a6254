package domain

import (
	"time"

	"github.com/gosimple/slug"
)

// Booking is the durable record created when a paid, validated creative is
// published. Content never changes after creation; only Active may be
// toggled elsewhere.
type Booking struct {
	ID              string
	MerchantID      string
	Target          string
	PlacementID     PlacementID
	PeriodID        string
	NeighborhoodIDs []string
	Creative        CreativePayload
	Active          bool
	ExpiresAt       *time.Time
	IdempotencyKey  string
	CreatedAt       time.Time
}

// Slots returns the occupancy the booking claims.
func (b Booking) Slots() []OccupancyRecord {
	out := make([]OccupancyRecord, 0, len(b.NeighborhoodIDs))
	for _, n := range b.NeighborhoodIDs {
		out = append(out, OccupancyRecord{NeighborhoodID: n, PeriodID: b.PeriodID})
	}
	return out
}

// Merchant is the buyer of a booking.
type Merchant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Target derives the surface key a placement is published to, e.g. "home"
// or "category:restaurants".
func Target(placement PlacementID, category string) string {
	switch placement {
	case PlacementHome:
		return "home"
	case PlacementCategory:
		return "category:" + slug.Make(category)
	case PlacementCombo:
		return "combo:" + slug.Make(category)
	default:
		return ""
	}
}

// PaymentMethod is how the merchant pays for a booking.
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentPix || m == PaymentCard
}
