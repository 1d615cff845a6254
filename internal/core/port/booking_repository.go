package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"bairro-ads/internal/core/domain"
)

var (
	// ErrSlotTaken is returned when another booking claimed one of the
	// requested (neighborhood, period) slots first.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrPaymentNotConfirmed is returned when the payment gateway declines
	// or does not answer in time.
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")
)

// OccupancyReader loads sold slots for a set of periods.
type OccupancyReader interface {
	FetchOccupancy(ctx context.Context, periodIDs []string) ([]domain.OccupancyRecord, error)
}

// BookingRepository defines the persistence layer for bookings. It is an
// outbound port in hexagonal architecture. Implementations must enforce
// slot uniqueness and idempotency keys atomically.
type BookingRepository interface {
	OccupancyReader

	// CreateBookingWithAudit stores the booking, the slots it claims and its
	// audit entry in one transaction. It fills b.ID/b.CreatedAt and
	// entry.BookingID. When a booking with the same idempotency key already
	// exists, b is overwritten with it and created is false.
	CreateBookingWithAudit(ctx context.Context, b *domain.Booking, entry *domain.AuditLogEntry) (created bool, err error)

	// CountPriorBookings returns how many bookings the merchant already has.
	CountPriorBookings(ctx context.Context, merchantID string) (int64, error)
}

// Notifier dispatches merchant notifications. Delivery is best effort.
type Notifier interface {
	SendFirstBookingNotification(ctx context.Context, notice domain.FirstBookingNotice) error
}

// PaymentGateway confirms that a payment went through. It returns false
// when the payment was declined.
type PaymentGateway interface {
	ConfirmPayment(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (bool, error)
}
