package controller

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sitebloom/sitebloom/internal/client/nav"
	"github.com/sitebloom/sitebloom/internal/client/session"
	"github.com/sitebloom/sitebloom/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeAPI records auth calls and returns canned results. onLogin, when set,
// runs inside Login before returning (used to provoke re-entrancy).
type fakeAPI struct {
	loginCalls int
	loginUser  string
	loginPass  string
	loginToken string
	loginErr   error
	onLogin    func()

	registerCalls int
	registerUser  string
	registerEmail string
	registerPass  string
	registerErr   error
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (string, error) {
	f.loginCalls++
	f.loginUser, f.loginPass = username, password
	if f.onLogin != nil {
		f.onLogin()
	}
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, username, email, password string) error {
	f.registerCalls++
	f.registerUser, f.registerEmail, f.registerPass = username, email, password
	return f.registerErr
}

// memSessions is an in-memory SessionManager with failure injection.
type memSessions struct {
	current   session.Session
	commits   []session.Session
	clears    int
	commitErr error
	clearErr  error
	getErr    error
}

func (m *memSessions) Commit(_ context.Context, token, username string) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.current = session.Session{Token: token, Username: username}
	m.commits = append(m.commits, m.current)
	return nil
}

func (m *memSessions) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.clears++
	m.current = session.Session{}
	return nil
}

func (m *memSessions) Current(_ context.Context) (session.Session, error) {
	if m.getErr != nil {
		return session.Session{}, m.getErr
	}
	return m.current, nil
}

// fakeNav records every transition.
type fakeNav struct {
	replaces []nav.Screen
	pushes   []nav.Screen
	current  nav.Screen
}

func (f *fakeNav) Replace(target nav.Screen) { f.replaces = append(f.replaces, target); f.current = target }
func (f *fakeNav) Push(target nav.Screen)    { f.pushes = append(f.pushes, target); f.current = target }
func (f *fakeNav) Back() bool                { return false }
func (f *fakeNav) Current() nav.Screen       { return f.current }

type alertRecord struct {
	title   string
	message string
}

// fakeAlerter records alerts; states captures the controller state observed
// while each alert was showing.
type fakeAlerter struct {
	alerts  []alertRecord
	observe func() State
	states  []State
}

func (f *fakeAlerter) Alert(title, message string) {
	f.alerts = append(f.alerts, alertRecord{title: title, message: message})
	if f.observe != nil {
		f.states = append(f.states, f.observe())
	}
}

// fakeConfirmer answers every confirmation with a fixed choice.
type fakeConfirmer struct {
	answer bool
	asked  []alertRecord
}

func (f *fakeConfirmer) Confirm(title, message string) bool {
	f.asked = append(f.asked, alertRecord{title: title, message: message})
	return f.answer
}

func requireNoAlerts(t *testing.T, a *fakeAlerter) {
	t.Helper()
	if len(a.alerts) != 0 {
		t.Fatalf("unexpected alerts: %+v", a.alerts)
	}
}
