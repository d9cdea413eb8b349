package redisx

import "time"

const (
	// Server-held cart state: cart:{cart_id} -> JSON line array
	KeyCart = "cart:%s"

	// Checkout session status cache: checkout_session:{session_id} -> summary JSON
	KeySessionStatus = "checkout_session:%s"

	// Dedup event processing: dedup:{consumer}:{id} (id = webhook event id or envelope event_id)
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLCart        = 30 * 24 * time.Hour
	TTLStatusCache = 5 * time.Minute
	TTLDedup       = 48 * time.Hour
)
