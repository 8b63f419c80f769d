package auth

import "fmt"

// State is a step of the interactive login.
type State int32

const (
	StateInit State = iota
	StateNavigateToLogin
	StateFillCredentials
	StateSubmitForm
	StateAwaitingTwoFactor
	StateAuthenticated
	StateTimedOut
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateNavigateToLogin:
		return "navigate_to_login"
	case StateFillCredentials:
		return "fill_credentials"
	case StateSubmitForm:
		return "submit_form"
	case StateAwaitingTwoFactor:
		return "awaiting_two_factor"
	case StateAuthenticated:
		return "authenticated"
	case StateTimedOut:
		return "timed_out"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Terminal reports whether the login has finished in this state.
func (s State) Terminal() bool {
	return s == StateAuthenticated || s == StateTimedOut || s == StateFailed
}

// Outcome is the terminal result of a login attempt.
type Outcome string

const (
	OutcomeNone          Outcome = ""
	OutcomeAuthenticated Outcome = "authenticated"
	OutcomeTimedOut      Outcome = "timed_out"
	OutcomeFailed        Outcome = "failed"
)

// Outcome maps a terminal state to its outcome; non-terminal states have none.
func (s State) Outcome() Outcome {
	switch s {
	case StateAuthenticated:
		return OutcomeAuthenticated
	case StateTimedOut:
		return OutcomeTimedOut
	case StateFailed:
		return OutcomeFailed
	default:
		return OutcomeNone
	}
}
