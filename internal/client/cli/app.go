package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/sitebloom/sitebloom/internal/client/api"
	"github.com/sitebloom/sitebloom/internal/client/config"
	"github.com/sitebloom/sitebloom/internal/client/controller"
	"github.com/sitebloom/sitebloom/internal/client/nav"
	"github.com/sitebloom/sitebloom/internal/client/session"
	"github.com/sitebloom/sitebloom/internal/common"
	"github.com/sitebloom/sitebloom/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// App wires the client together: config, session database, auth API,
// controllers, and navigation.
type App struct {
	config   *config.Config
	login    *controller.Login
	register *controller.Register
	profile  *controller.Profile
	nav      nav.Navigator
	log      logging.Logger
	db       *sql.DB
	reader   *bufio.Reader
}

// NewApp opens the session database, restores any persisted session (healing
// a partial one), and builds the controllers. The initial screen is the
// authenticated area when a valid session survived the restart, the login
// screen otherwise.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sessions := session.NewManager(session.NewSQLiteStore(db), log)

	restored, err := sessions.Restore(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	initial := nav.ScreenLogin
	if restored.Authenticated() {
		initial = nav.ScreenHome
	}
	navigator := nav.NewStack(initial)

	reader := bufio.NewReader(os.Stdin)
	ui := NewTerminalUI(reader, os.Stdout)
	apiClient := api.New(cfg.APIURL, cfg.RequestTimeout, log)

	return &App{
		config:   cfg,
		login:    controller.NewLogin(apiClient, sessions, navigator, ui, log),
		register: controller.NewRegister(apiClient, navigator, ui, log),
		profile:  controller.NewProfile(sessions, navigator, ui, ui, log),
		nav:      navigator,
		log:      log,
		db:       db,
		reader:   reader,
	}, nil
}

// Run drives the screen loops until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	runScreens(ctx, a, a.nav, bufio.NewScanner(os.Stdin))
}

// Close releases the session database.
func (a *App) Close() error {
	return a.db.Close()
}

// SubmitLogin prompts for credentials and runs the login controller. The
// password buffer is wiped before returning.
func (a *App) SubmitLogin(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.login.Submit(ctx, username, string(password))
	return nil
}

// SubmitRegister prompts for the registration fields and runs the register
// controller. The password buffer is wiped before returning.
func (a *App) SubmitRegister(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.register.Submit(ctx, username, email, string(password))
	return nil
}

// ShowProfile prints the profile greeting.
func (a *App) ShowProfile(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Hello, %s!", a.profile.Username(ctx)))
	return nil
}

// Logout runs the profile controller's logout flow (confirmation included).
func (a *App) Logout(ctx context.Context) error {
	a.profile.Logout(ctx)
	return nil
}
