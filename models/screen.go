package models

import "fmt"

type ScreenKind int

const (
	ScreenNone ScreenKind = iota - 1 // sentinel: no active screen yet
	ScreenLogin
	ScreenSuccess
	ScreenDenied
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenNone:
		return "None"
	case ScreenLogin:
		return "Login"
	case ScreenSuccess:
		return "Success"
	case ScreenDenied:
		return "Denied"
	default:
		return "Unknown"
	}
}

// Page returns the tview page name the screen is registered under.
func (k ScreenKind) Page() string {
	switch k {
	case ScreenLogin:
		return "login"
	case ScreenSuccess:
		return "success"
	case ScreenDenied:
		return "denied"
	default:
		return ""
	}
}

// Screen is the value shown by the display surface.
// Username is only set for ScreenSuccess and holds the name that was submitted to reach it.
type Screen struct {
	Kind     ScreenKind
	Username string
}

func NoScreen() Screen { return Screen{Kind: ScreenNone} }
func LoginScreen() Screen { return Screen{Kind: ScreenLogin} }
func DeniedScreen() Screen { return Screen{Kind: ScreenDenied} }

func SuccessScreen(username string) Screen {
	return Screen{Kind: ScreenSuccess, Username: username}
}

func (s Screen) String() string {
	if s.Kind == ScreenSuccess {
		return fmt.Sprintf("%s(%s)", s.Kind, s.Username)
	}
	return s.Kind.String()
}
