package configs

import "time"

// Booking tunes the purchase flow.
type Booking struct {
	// PaymentTimeout bounds the wait for a payment confirmation.
	PaymentTimeout time.Duration `env:"PAYMENT_TIMEOUT" envDefault:"2m"`
	// SessionTTL is how long an idle purchase session is kept.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}
