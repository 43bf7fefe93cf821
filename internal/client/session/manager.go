package session

import (
	"context"
	"fmt"

	"github.com/sitebloom/sitebloom/internal/logging"
)

// Manager is the single owner of the persisted session. Commit and Clear
// update both keys in a fixed order (token first); since the store has no
// cross-key transactions there is a narrow window where only one write has
// landed. Restore heals exactly that window on the next launch.
type Manager struct {
	store Store
	log   logging.Logger
}

func NewManager(store Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Commit persists a new session. Both writes complete before Commit returns,
// so callers can navigate immediately afterwards without racing a reader on
// the next screen.
func (m *Manager) Commit(ctx context.Context, token, username string) error {
	if err := m.store.Set(ctx, KeyToken, token); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	if err := m.store.Set(ctx, KeyUsername, username); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	m.log.Info(ctx, "session committed", "username", username)
	return nil
}

// Clear removes the session. Clearing when no session exists is a no-op and
// not an error.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Remove(ctx, KeyToken); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	if err := m.store.Remove(ctx, KeyUsername); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	m.log.Info(ctx, "session cleared")
	return nil
}

// Current reads the stored session. Absent keys come back as empty fields.
func (m *Manager) Current(ctx context.Context) (Session, error) {
	token, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		return Session{}, err
	}
	username, err := m.store.Get(ctx, KeyUsername)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Username: username}, nil
}

// Restore reads the session at startup. A half-written session (token
// without username, or the reverse — the process died mid-commit or
// mid-clear) is invalid: both keys are cleared and an empty session is
// returned, forcing a fresh login.
func (m *Manager) Restore(ctx context.Context) (Session, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return Session{}, err
	}

	if (s.Token == "") != (s.Username == "") {
		m.log.Warn(ctx, "partial session found, clearing")
		if err := m.Clear(ctx); err != nil {
			return Session{}, err
		}
		return Session{}, nil
	}
	return s, nil
}
