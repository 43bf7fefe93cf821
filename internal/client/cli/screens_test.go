package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/sitebloom/sitebloom/internal/client/nav"
)

// fakeExec records dispatched commands and mimics the navigation side
// effects of the real controllers.
type fakeExec struct {
	n     nav.Navigator
	calls []string
}

func (f *fakeExec) SubmitLogin(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.n.Replace(nav.ScreenHome)
	return nil
}

func (f *fakeExec) SubmitRegister(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.n.Replace(nav.ScreenLogin)
	return nil
}

func (f *fakeExec) ShowProfile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.n.Replace(nav.ScreenLogin)
	return nil
}

func silenceOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func runScript(t *testing.T, initial nav.Screen, script ...string) (*fakeExec, *nav.Stack) {
	t.Helper()
	silenceOutput(t)

	n := nav.NewStack(initial)
	exec := &fakeExec{n: n}
	sc := bufio.NewScanner(strings.NewReader(strings.Join(script, "\n")))

	runScreens(context.Background(), exec, n, sc)
	return exec, n
}

func TestRunScreens_LoginThenProfileThenLogout(t *testing.T) {
	exec, n := runScript(t, nav.ScreenLogin,
		"help",
		"login",
		"profile",
		"logout",
		"exit",
	)

	want := []string{"login", "profile", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
		}
	}
	if n.Current() != nav.ScreenLogin {
		t.Fatalf("expected to end on login screen, got %s", n.Current())
	}
}

func TestRunScreens_CommandsAreScreenScoped(t *testing.T) {
	// "profile" and "logout" are home-screen commands; on the login screen
	// they must be rejected as unknown.
	exec, _ := runScript(t, nav.ScreenLogin,
		"profile",
		"logout",
		"exit",
	)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunScreens_RegisterPushAndBack(t *testing.T) {
	exec, n := runScript(t, nav.ScreenLogin,
		"register", // push register screen
		"back",     // pop back to login
		"exit",
	)

	if len(exec.calls) != 0 {
		t.Fatalf("navigation-only commands must not dispatch: %v", exec.calls)
	}
	if n.Current() != nav.ScreenLogin {
		t.Fatalf("expected login screen after back, got %s", n.Current())
	}
}

func TestRunScreens_RegisterSubmitRoutesToLogin(t *testing.T) {
	exec, n := runScript(t, nav.ScreenLogin,
		"register", // open the register screen
		"register", // submit; fake replaces with login
		"exit",
	)

	if len(exec.calls) != 1 || exec.calls[0] != "register" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if n.Current() != nav.ScreenLogin {
		t.Fatalf("expected login screen, got %s", n.Current())
	}

	// The register screen must not be reachable via back after the replace.
	if n.Back() && n.Current() == nav.ScreenRegister {
		t.Fatalf("register screen reachable via back after replace")
	}
}

func TestRunScreens_ExitFromAnyScreen(t *testing.T) {
	exec, _ := runScript(t, nav.ScreenHome, "quit")
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunScreens_EOFEndsLoop(t *testing.T) {
	exec, _ := runScript(t, nav.ScreenLogin /* no input */)
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
