package models

import (
	"strings"
	"time"
)

// Status classifies a repeater's operational state. The literal values
// match the persisted storage format.
type Status string

const (
	StatusActive      Status = "Ativa"
	StatusInactive    Status = "Inativa"
	StatusMaintenance Status = "Manutenção"
)

// ParseStatus matches s against the known status values, ignoring case.
func ParseStatus(s string) (Status, bool) {
	for _, st := range []Status{StatusActive, StatusInactive, StatusMaintenance} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Repeater is a radio relay station record. Frequency, offset and CTCSS
// are kept as text to preserve exact formatting (leading signs, trailing
// zeros). Latitude/Longitude 0,0 is the "no coordinates" sentinel, not a
// position in the Gulf of Guinea.
type Repeater struct {
	ID        string    `json:"id"`
	Callsign  string    `json:"callsign"`
	Frequency string    `json:"frequency"`
	Offset    string    `json:"offset"`
	CTCSS     string    `json:"ctcss"`
	Location  string    `json:"location"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Power     string    `json:"power"`
	Coverage  string    `json:"coverage"`
	Status    Status    `json:"status"`
	Owner     string    `json:"owner"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// CreatedBy and LastModifiedBy hold the acting user's indicative,
	// or "" for anonymous writes.
	CreatedBy      string `json:"createdBy"`
	LastModifiedBy string `json:"lastModifiedBy"`
}

// HasCoordinates reports whether the record carries a plottable position.
func (r Repeater) HasCoordinates() bool {
	return r.Latitude != 0 || r.Longitude != 0
}

// RepeaterDraft is the caller-supplied part of a new record. The registry
// assigns ID and all timestamps/authorship stamps.
type RepeaterDraft struct {
	Callsign  string
	Frequency string
	Offset    string
	CTCSS     string
	Location  string
	Latitude  float64
	Longitude float64
	Power     string
	Coverage  string
	Status    Status
	Owner     string
	Notes     string
}

// RepeaterPatch is a partial update: nil fields keep the current value.
// ID, CreatedAt and CreatedBy are immutable and therefore not patchable;
// UpdatedAt and LastModifiedBy are stamped by the registry on every
// update regardless of what the patch contains.
type RepeaterPatch struct {
	Callsign  *string
	Frequency *string
	Offset    *string
	CTCSS     *string
	Location  *string
	Latitude  *float64
	Longitude *float64
	Power     *string
	Coverage  *string
	Status    *Status
	Owner     *string
	Notes     *string
}

// Apply merges the patch over r.
func (p RepeaterPatch) Apply(r *Repeater) {
	if p.Callsign != nil {
		r.Callsign = *p.Callsign
	}
	if p.Frequency != nil {
		r.Frequency = *p.Frequency
	}
	if p.Offset != nil {
		r.Offset = *p.Offset
	}
	if p.CTCSS != nil {
		r.CTCSS = *p.CTCSS
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Latitude != nil {
		r.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		r.Longitude = *p.Longitude
	}
	if p.Power != nil {
		r.Power = *p.Power
	}
	if p.Coverage != nil {
		r.Coverage = *p.Coverage
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Owner != nil {
		r.Owner = *p.Owner
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
