// Package navigation maps the dashboard's three logical locations and the
// guard that keeps the dashboard behind a restaurant selection.
package navigation

import (
	"fmt"
	"strings"
)

type Location int

const (
	Landing Location = iota
	Login
	Dashboard
)

// ParseLocation maps a path to a Location. Unknown paths land on Landing.
func ParseLocation(path string) Location {
	p := strings.TrimSuffix(strings.TrimSpace(path), "/")
	switch p {
	case "/login", "login":
		return Login
	case "/dashboard", "dashboard":
		return Dashboard
	default:
		return Landing
	}
}

func (l Location) Path() string {
	switch l {
	case Landing:
		return "/"
	case Login:
		return "/login"
	case Dashboard:
		return "/dashboard"
	}
	panic(fmt.Sprintf("navigation: unknown location %d", int(l)))
}

func (l Location) String() string {
	switch l {
	case Landing:
		return "landing"
	case Login:
		return "login"
	case Dashboard:
		return "dashboard"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Resolve returns where a request for l actually lands. The dashboard needs a
// selected restaurant; without one the visitor is sent to Login.
func Resolve(l Location, hasSelection bool) Location {
	switch l {
	case Landing, Login:
		return l
	case Dashboard:
		if !hasSelection {
			return Login
		}
		return Dashboard
	}
	panic(fmt.Sprintf("navigation: unknown location %d", int(l)))
}

func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
