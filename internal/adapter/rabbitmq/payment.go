package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/port"
)

const (
	KeyPaymentRequested = "payment.requested"
	KeyPaymentConfirmed = "payment.confirmed"
	KeyPaymentFailed    = "payment.failed"
)

// PaymentKeys are the routing keys the gateway's queue must be bound to.
var PaymentKeys = []string{KeyPaymentConfirmed, KeyPaymentFailed}

type PaymentRequest struct {
	CorrelationID string          `json:"correlation_id"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

type PaymentResult struct {
	CorrelationID string `json:"correlation_id"`
	PaymentID     string `json:"payment_id"`
	Reason        string `json:"reason,omitempty"`
}

// PaymentGateway requests a charge from the payment service and waits for
// its confirmed or failed event. Results are matched to callers by
// correlation id.
type PaymentGateway struct {
	pub     publisher
	cons    *Consumer
	waiters *waiters
	logger  *slog.Logger
}

func NewPaymentGateway(pub *Publisher, cons *Consumer, logger *slog.Logger) *PaymentGateway {
	return &PaymentGateway{pub: pub, cons: cons, waiters: newWaiters(), logger: logger}
}

// ConfirmPayment blocks until the payment service answers or ctx is done.
func (g *PaymentGateway) ConfirmPayment(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (bool, error) {
	id := uuid.NewString()
	result, cancel := g.waiters.register(id)
	defer cancel()

	err := g.pub.PublishJSON(ctx, KeyPaymentRequested, Event[PaymentRequest]{
		Event:   KeyPaymentRequested,
		Version: 1,
		Data: PaymentRequest{
			CorrelationID: id,
			Method:        string(method),
			Amount:        amount,
			Currency:      "BRL",
		},
	})
	if err != nil {
		return false, fmt.Errorf("publish payment request: %w", err)
	}

	select {
	case ok := <-result:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Run consumes payment results until ctx is cancelled.
func (g *PaymentGateway) Run(ctx context.Context) error {
	msgs, err := g.cons.Deliveries(ctx)
	if err != nil {
		return err
	}
	go func() {
		for d := range msgs {
			if err := g.handle(d.RoutingKey, d.Body); err != nil {
				g.logger.Warn("payment result rejected", slog.String("key", d.RoutingKey), slog.Any("error", err))
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}()
	return nil
}

var errMalformedResult = errors.New("malformed payment result")

// handle resolves the waiter of a payment result. Results nobody waits for,
// e.g. after a timeout, are dropped.
func (g *PaymentGateway) handle(key string, body []byte) error {
	var ok bool
	switch key {
	case KeyPaymentConfirmed:
		ok = true
	case KeyPaymentFailed:
	default:
		return nil
	}

	var evt Event[PaymentResult]
	if err := json.Unmarshal(body, &evt); err != nil {
		return fmt.Errorf("%w: %w", errMalformedResult, err)
	}
	if evt.Data.CorrelationID == "" {
		return fmt.Errorf("%w: missing correlation id", errMalformedResult)
	}
	if !g.waiters.resolve(evt.Data.CorrelationID, ok) {
		g.logger.Debug("payment result without waiter", slog.String("correlation_id", evt.Data.CorrelationID))
	}
	return nil
}

type waiters struct {
	mu      sync.Mutex
	pending map[string]chan bool
}

func newWaiters() *waiters {
	return &waiters{pending: make(map[string]chan bool)}
}

// register returns the channel the result for id is delivered on and a
// func that forgets id.
func (w *waiters) register(id string) (<-chan bool, func()) {
	ch := make(chan bool, 1)
	w.mu.Lock()
	w.pending[id] = ch
	w.mu.Unlock()
	return ch, func() {
		w.mu.Lock()
		delete(w.pending, id)
		w.mu.Unlock()
	}
}

func (w *waiters) resolve(id string, ok bool) bool {
	w.mu.Lock()
	ch, found := w.pending[id]
	delete(w.pending, id)
	w.mu.Unlock()
	if !found {
		return false
	}
	ch <- ok
	return true
}

var _ port.PaymentGateway = (*PaymentGateway)(nil)
