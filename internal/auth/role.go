package auth

import "github.com/conn-castle/pricebook/internal/messages"

// Role is the access level granted for a session. It is fixed at login.
type Role int

const (
	// RoleNone is the zero value; no session has been granted.
	RoleNone Role = iota
	// RoleAdmin may edit variants and export the catalog.
	RoleAdmin
	// RoleWorker may only view the catalog.
	RoleWorker
)

// CanEdit reports whether the role is shown the edit affordance.
// This is a presentation rule only; nothing below the UI enforces it.
func (r Role) CanEdit() bool {
	return r == RoleAdmin
}

// CanExport reports whether the role is offered the export action.
func (r Role) CanExport() bool {
	return r == RoleAdmin
}

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleWorker:
		return "worker"
	default:
		return "none"
	}
}

// Badge returns the mode label displayed in the catalog header.
func (r Role) Badge() string {
	if r == RoleAdmin {
		return messages.BadgeAdmin
	}
	return messages.BadgeViewer
}
