package domain

import (
	"time"
)

const AuditActionCreated = "created"

// AuditLogEntry is an append-only trace of a booking creation.
type AuditLogEntry struct {
	ID        int64
	Actor     string
	Action    string
	BookingID string
	Details   AuditDetails
	CreatedAt time.Time
}

// AuditDetails is stored as JSON alongside the entry.
type AuditDetails struct {
	MerchantName string           `json:"merchant_name"`
	FirstBooking bool             `json:"first_booking"`
	Target       string           `json:"target"`
	Creative     CreativeEnvelope `json:"creative"`
}

// FirstBookingNotice is dispatched once, after a merchant's first booking.
type FirstBookingNotice struct {
	BookingID    string    `json:"booking_id"`
	MerchantID   string    `json:"merchant_id"`
	MerchantName string    `json:"merchant_name"`
	Target       string    `json:"target"`
	PublishedAt  time.Time `json:"published_at"`
}
