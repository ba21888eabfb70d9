package entities

import "time"

// Admin is a ledger administrator. Admins manage the admin set and the
// supplier roster; there is no hierarchy between admins.
type Admin struct {
	Address string    `json:"address"`
	AddedAt time.Time `json:"added_at"`
}

// Supplier is a seller allowed to list items while Active. Deactivation
// keeps the record so history and re-activation survive.
type Supplier struct {
	Address   string    `json:"address"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
