package models

import "time"

// Card is a redeemable card-key inventory unit. ReservedOrder holds the order
// number the card is held for until the card is used or the hold is released.
type Card struct {
	ID            uint64
	Key           string
	Used          bool
	ReservedOrder *string
	ReservedAt    *time.Time
}
