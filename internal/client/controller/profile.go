package controller

import (
	"context"

	"github.com/sitebloom/sitebloom/internal/client/nav"
	"github.com/sitebloom/sitebloom/internal/logging"
)

// usernamePlaceholder is shown while the stored username is absent or could
// not be read.
const usernamePlaceholder = "User"

// Profile drives the profile screen: it reads the display name from the
// session and handles logout.
type Profile struct {
	sessions SessionManager
	nav      nav.Navigator
	alerts   Alerter
	confirms Confirmer
	log      logging.Logger
}

func NewProfile(sessions SessionManager, navigator nav.Navigator, alerts Alerter, confirms Confirmer, log logging.Logger) *Profile {
	return &Profile{sessions: sessions, nav: navigator, alerts: alerts, confirms: confirms, log: log}
}

// Username returns the stored display name, falling back to a neutral
// placeholder when the session holds none or the read fails.
func (c *Profile) Username(ctx context.Context) string {
	s, err := c.sessions.Current(ctx)
	if err != nil {
		c.log.Warn(ctx, "session read failed", "error", err)
		return usernamePlaceholder
	}
	if s.Username == "" {
		return usernamePlaceholder
	}
	return s.Username
}

// Logout asks for confirmation, clears the session, and routes to the login
// screen. Cancelling leaves everything unchanged. Logging out without a
// session is harmless: the clear is a no-op and navigation still happens.
// A failed clear is surfaced and navigation is withheld, since the stale
// token would otherwise survive into the login screen.
func (c *Profile) Logout(ctx context.Context) {
	if !c.confirms.Confirm(titleLogout, msgLogoutConfirm) {
		return
	}

	if err := c.sessions.Clear(ctx); err != nil {
		c.log.Error(ctx, "session clear failed", "error", err)
		c.alerts.Alert(titleLogout, msgSessionWipeFailed)
		return
	}

	c.log.Info(ctx, "logged out")
	c.nav.Replace(nav.ScreenLogin)
}
