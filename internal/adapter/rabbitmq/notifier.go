package rabbitmq

import (
	"context"

	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/port"
)

const KeyFirstBookingCreated = "booking.first_created"

type publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Notifier publishes first-booking notices for the notification service.
type Notifier struct {
	pub publisher
}

func NewNotifier(pub *Publisher) *Notifier {
	return &Notifier{pub: pub}
}

func (n *Notifier) SendFirstBookingNotification(ctx context.Context, notice domain.FirstBookingNotice) error {
	return n.pub.PublishJSON(ctx, KeyFirstBookingCreated, Event[domain.FirstBookingNotice]{
		Event:   KeyFirstBookingCreated,
		Version: 1,
		Data:    notice,
	})
}

var _ port.Notifier = (*Notifier)(nil)
