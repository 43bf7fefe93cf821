// Package controller contains the per-screen state machines of the SiteBloom
// client. Each controller orchestrates one screen's form submission: it calls
// the auth API, updates the session through its manager, and drives
// navigation. Every failure is converted to a single user-facing alert at
// this boundary; nothing propagates further.
package controller

import (
	"context"

	"github.com/sitebloom/sitebloom/internal/client/session"
)

// State of a screen's submission machine. A controller is Idle until a
// submit, Submitting while the request is in flight, and returns to Idle once
// the terminal outcome has been acknowledged (alert dismissed or navigation
// triggered).
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

// AuthAPI is the slice of the network boundary the controllers use.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
}

// SessionManager is the slice of session.Manager the controllers use.
type SessionManager interface {
	Commit(ctx context.Context, token, username string) error
	Clear(ctx context.Context) error
	Current(ctx context.Context) (session.Session, error)
}

// Alerter shows a blocking alert and returns once the user acknowledged it.
type Alerter interface {
	Alert(title, message string)
}

// Confirmer asks a two-choice question; false means the user cancelled.
type Confirmer interface {
	Confirm(title, message string) bool
}

// User-facing texts shared by the controllers.
const (
	titleLoginFailed     = "Login Failed"
	titleRegisterOK      = "Registration Successful"
	titleRegisterFailed  = "Registration Failed"
	titleLogout          = "Logout"
	msgRegisterOK        = "You can now log in"
	msgLogoutConfirm     = "Are you sure you want to logout?"
	msgSessionSaveFailed = "Could not save your session. Please try again."
	msgSessionWipeFailed = "Could not clear your session. Please try again."
)
