package port

import (
	"context"
	"errors"

	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/inventory"
	"bairro-ads/internal/core/workflow"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrUnknownPlacement    = errors.New("unknown placement")
	ErrUnknownPeriod       = errors.New("unknown period")
	ErrUnknownNeighborhood = errors.New("unknown neighborhood")
	ErrInvalidInput        = errors.New("invalid input")
)

// BookingUseCase defines the operations behind both merchant purchase
// flows. This interface represents the primary port into the application
// domain. Every method that changes a session returns its updated view.
type BookingUseCase interface {
	// Catalog returns the sellable placements, periods, neighborhoods and
	// templates.
	Catalog() domain.Catalog

	// Availability reports, for every catalog neighborhood, whether it is
	// free for all of the given periods.
	Availability(ctx context.Context, periodIDs []string) ([]NeighborhoodAvailability, error)

	StartSession(ctx context.Context, merchant domain.Merchant) (*workflow.View, error)
	GetSession(ctx context.Context, id string) (*workflow.View, error)

	ChoosePlacement(ctx context.Context, id string, placement domain.PlacementID) (*workflow.View, error)
	ChoosePeriod(ctx context.Context, id string, periodID string) (*workflow.View, error)
	ChooseNeighborhoods(ctx context.Context, id string, neighborhoodIDs []string) (*workflow.View, error)
	SelectAllAvailable(ctx context.Context, id string) (*workflow.View, error)
	SetCreativeAddon(ctx context.Context, id string, selected bool) (*workflow.View, error)
	SetCreative(ctx context.Context, id string, creative domain.CreativePayload) (*workflow.View, error)

	// ValidateCreative runs the creative rules; violations are reported in
	// the view, not as an error.
	ValidateCreative(ctx context.Context, id string) (*workflow.View, error)

	// Publish confirms payment and commits the booking with its audit entry.
	// Only one publish per session may run at a time.
	Publish(ctx context.Context, id string, method domain.PaymentMethod) (*domain.Booking, error)
}

// NeighborhoodAvailability is one row of the availability listing.
type NeighborhoodAvailability struct {
	Neighborhood domain.Neighborhood `json:"neighborhood"`
	inventory.Availability
}
