// Package nav encodes the client's navigation policy as two explicit
// primitives: Replace, which swaps the current screen and suppresses the
// back-stack entry (login success, registration success, logout), and Push,
// which keeps it (login → register). Keeping the policy in one place
// guarantees the user can never navigate back into a screen that no longer
// reflects a valid state.
package nav

// Screen identifies a navigation target.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenHome     Screen = "home"
)

// Navigator drives screen transitions. Implementations are not safe for
// concurrent use; all calls happen on the single UI loop.
type Navigator interface {
	// Replace swaps the current screen for target, removing the current
	// screen from the back-stack.
	Replace(target Screen)

	// Push navigates forward to target, preserving the back-stack.
	Push(target Screen)

	// Back pops to the previous screen. It reports false (and stays put)
	// when there is nothing to go back to.
	Back() bool

	// Current returns the screen on top of the stack.
	Current() Screen
}

// Stack is the Navigator used by the terminal client: a plain screen stack.
type Stack struct {
	screens []Screen
}

// NewStack returns a Stack showing initial.
func NewStack(initial Screen) *Stack {
	return &Stack{screens: []Screen{initial}}
}

func (s *Stack) Replace(target Screen) {
	s.screens[len(s.screens)-1] = target
}

func (s *Stack) Push(target Screen) {
	s.screens = append(s.screens, target)
}

func (s *Stack) Back() bool {
	if len(s.screens) < 2 {
		return false
	}
	s.screens = s.screens[:len(s.screens)-1]
	return true
}

func (s *Stack) Current() Screen {
	return s.screens[len(s.screens)-1]
}
