// Package notify holds in-process stand-ins for the notification and
// payment services, used when no message broker is configured.
package notify

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/port"
)

// LogNotifier writes first-booking notices to the log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendFirstBookingNotification(_ context.Context, notice domain.FirstBookingNotice) error {
	n.logger.Info("first booking",
		slog.String("booking_id", notice.BookingID),
		slog.String("merchant_id", notice.MerchantID),
		slog.String("merchant_name", notice.MerchantName),
		slog.String("target", notice.Target),
	)
	return nil
}

// ApproveGateway confirms every payment with a positive amount.
type ApproveGateway struct {
	logger *slog.Logger
}

func NewApproveGateway(logger *slog.Logger) *ApproveGateway {
	return &ApproveGateway{logger: logger}
}

func (g *ApproveGateway) ConfirmPayment(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok := amount.IsPositive()
	g.logger.Debug("payment auto-confirmed", slog.String("method", string(method)), slog.String("amount", amount.StringFixed(2)), slog.Bool("ok", ok))
	return ok, nil
}

var (
	_ port.Notifier       = (*LogNotifier)(nil)
	_ port.PaymentGateway = (*ApproveGateway)(nil)
)
