package models

import "time"

// Teacher is the roster view of a teaching staff member. It is read-only
// for the expense ledger, which uses it to drive salary-obligation
// synthesis, one row per teacher per month.
type Teacher struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns the name as it appears on salary expense rows.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
