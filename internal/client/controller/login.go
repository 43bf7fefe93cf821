package controller

import (
	"context"

	"github.com/sitebloom/sitebloom/internal/client/api"
	"github.com/sitebloom/sitebloom/internal/client/nav"
	"github.com/sitebloom/sitebloom/internal/logging"
)

// Login drives the login screen. On success it commits the session and
// replaces the screen with the authenticated area, so login is not reachable
// via back navigation.
type Login struct {
	auth     AuthAPI
	sessions SessionManager
	nav      nav.Navigator
	alerts   Alerter
	log      logging.Logger

	state    State
	username string
}

func NewLogin(auth AuthAPI, sessions SessionManager, navigator nav.Navigator, alerts Alerter, log logging.Logger) *Login {
	return &Login{auth: auth, sessions: sessions, nav: navigator, alerts: alerts, log: log}
}

// State returns the current submission state.
func (c *Login) State() State { return c.state }

// Username returns the last submitted username, preserved across a failed
// attempt so the user does not retype it. The password is never retained.
func (c *Login) Username() string { return c.username }

// Submit runs one login attempt. Re-entrant submits while a request is in
// flight are ignored. The session commit completes before navigation is
// triggered; if the commit fails the user is alerted and stays on the login
// screen.
func (c *Login) Submit(ctx context.Context, username, password string) {
	if c.state == StateSubmitting {
		return
	}
	c.state = StateSubmitting
	c.username = username

	token, err := c.auth.Login(ctx, username, password)
	if err != nil {
		c.state = StateFailed
		c.log.Info(ctx, "login failed", "username", username)
		c.alerts.Alert(titleLoginFailed, api.ErrorMessage(err))
		c.state = StateIdle
		return
	}

	if err := c.sessions.Commit(ctx, token, username); err != nil {
		c.state = StateFailed
		c.log.Error(ctx, "session commit failed", "error", err)
		c.alerts.Alert(titleLoginFailed, msgSessionSaveFailed)
		c.state = StateIdle
		return
	}

	c.state = StateSuccess
	c.log.Info(ctx, "login successful", "username", username)
	c.nav.Replace(nav.ScreenHome)
	c.state = StateIdle
}
