package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/sitebloom/sitebloom/internal/client/nav"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the screen loops need to
// operate. The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	SubmitLogin(ctx context.Context) error
	SubmitRegister(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runScreens is the main loop of the terminal client. On every iteration it
// looks at the navigator's current screen, prints that screen's prompt, reads
// one command from the scanner, and dispatches to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Commands per screen:
//
//	login:     login, register (opens the register screen, back returns),
//	           help, exit | quit
//	register:  register, back, help, exit | quit
//	home:      profile, logout, help, exit | quit
//
// Navigation happens as a side effect of the controllers (replace on login or
// registration success and on logout) or of the "register"/"back" commands
// (push/pop), so the next iteration automatically lands on the right screen.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the loop resilient and focused on I/O.
func runScreens(ctx context.Context, a execIface, n nav.Navigator, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sitebloom [%s] > ", n.Current()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		switch n.Current() {
		case nav.ScreenLogin:
			switch cmd {
			case "help":
				printlnFn("Available commands: login, register, exit")
			case "login":
				_ = a.SubmitLogin(ctx)
			case "register":
				n.Push(nav.ScreenRegister)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenRegister:
			switch cmd {
			case "help":
				printlnFn("Available commands: register, back, exit")
			case "register":
				_ = a.SubmitRegister(ctx)
			case "back":
				if !n.Back() {
					n.Replace(nav.ScreenLogin)
				}
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenHome:
			switch cmd {
			case "help":
				printlnFn("Available commands: profile, logout, exit")
			case "profile":
				_ = a.ShowProfile(ctx)
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}
