package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bairro-ads/internal/core/domain"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	err := n.SendFirstBookingNotification(context.Background(), domain.FirstBookingNotice{BookingID: "b-1", MerchantID: "m-1"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "booking_id=b-1")
}

func TestApproveGateway(t *testing.T) {
	g := NewApproveGateway(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	ok, err := g.ConfirmPayment(context.Background(), domain.PaymentPix, decimal.RequireFromString("99.80"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.ConfirmPayment(context.Background(), domain.PaymentPix, decimal.Zero)
	require.NoError(t, err)
	assert.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.ConfirmPayment(ctx, domain.PaymentCard, decimal.NewFromInt(1))
	require.ErrorIs(t, err, context.Canceled)
}
