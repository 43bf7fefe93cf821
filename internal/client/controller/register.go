package controller

import (
	"context"

	"github.com/sitebloom/sitebloom/internal/client/api"
	"github.com/sitebloom/sitebloom/internal/client/nav"
	"github.com/sitebloom/sitebloom/internal/logging"
)

// Register drives the registration screen. Registration never establishes a
// session: on success the user is routed to the login screen to log in.
type Register struct {
	auth   AuthAPI
	nav    nav.Navigator
	alerts Alerter
	log    logging.Logger

	state    State
	username string
	email    string
}

func NewRegister(auth AuthAPI, navigator nav.Navigator, alerts Alerter, log logging.Logger) *Register {
	return &Register{auth: auth, nav: navigator, alerts: alerts, log: log}
}

// State returns the current submission state.
func (c *Register) State() State { return c.state }

// Username returns the last submitted username, preserved across failures.
func (c *Register) Username() string { return c.username }

// Email returns the last submitted email, preserved across failures.
func (c *Register) Email() string { return c.email }

// Submit runs one registration attempt. Re-entrant submits are ignored while
// a request is in flight.
func (c *Register) Submit(ctx context.Context, username, email, password string) {
	if c.state == StateSubmitting {
		return
	}
	c.state = StateSubmitting
	c.username = username
	c.email = email

	if err := c.auth.Register(ctx, username, email, password); err != nil {
		c.state = StateFailed
		c.log.Info(ctx, "registration failed", "username", username)
		c.alerts.Alert(titleRegisterFailed, api.ErrorMessage(err))
		c.state = StateIdle
		return
	}

	c.state = StateSuccess
	c.log.Info(ctx, "registration successful", "username", username)
	c.alerts.Alert(titleRegisterOK, msgRegisterOK)
	c.nav.Replace(nav.ScreenLogin)
	c.state = StateIdle
}
