package models

import "time"

// Action tags an audit log entry.
type Action string

const (
	ActionLogin          Action = "login"
	ActionRegister       Action = "register"
	ActionLogout         Action = "logout"
	ActionAddRepeater    Action = "add_repeater"
	ActionUpdateRepeater Action = "update_repeater"
	ActionDeleteRepeater Action = "delete_repeater"
)

// AuditEntry is one record of the append-only audit log. RepeaterID is
// set only for repeater mutations.
type AuditEntry struct {
	Action     Action    `json:"action"`
	User       string    `json:"user"`
	RepeaterID string    `json:"repeaterId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
