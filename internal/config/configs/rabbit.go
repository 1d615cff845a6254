package configs

// Rabbit configures the message broker used for first-booking notifications
// and the payment handshake. An empty URL runs the service with in-process
// stand-ins that log notifications and approve payments.
type Rabbit struct {
	URL             string `env:"URL"`
	BookingExchange string `env:"BOOKING_EXCHANGE" envDefault:"booking.events"`
	PaymentExchange string `env:"PAYMENT_EXCHANGE" envDefault:"payment.events"`
	PaymentQueue    string `env:"PAYMENT_QUEUE" envDefault:"bairro-ads.payment-results"`
}

// Enabled reports whether a broker is configured.
func (c Rabbit) Enabled() bool {
	return c.URL != ""
}
