// Package models defines the data model of the repeater registry: users,
// the active session, repeater records, and audit log entries. JSON field
// names follow the persisted storage layout.
package models

import "time"

// User is an operator identity. Indicative (the amateur-radio callsign)
// is the primary key; Email is unique as well. Users are immutable after
// registration.
//
// Password holds a bcrypt hash, never the plaintext.
type User struct {
	Indicative string `json:"indicative"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
}

// Session is the single active session of a store. It carries a value
// copy of the authenticated user; adopting a persisted session on start
// does not re-validate credentials.
type Session struct {
	ID      string    `json:"id"`
	User    User      `json:"user"`
	LoginAt time.Time `json:"loginAt"`
}
