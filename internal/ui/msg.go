package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/myportfolio/internal/stage"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
)

// Tea message types for UI communication

// RouterMsg asks the application to show the screen for a route
type RouterMsg struct {
	To Route
}

// EnterMsg is sent by the landing screen's "Enter Dashboard" action
type EnterMsg struct{}

// SubmitNameMsg is sent by the login screen's "Continue" action
type SubmitNameMsg struct {
	Name string
}

// StatusMsg is a one-line notice shown on the dashboard
type StatusMsg struct {
	Text  string
	Error bool
}

// ThemeChangedMsg is sent after the theme toggle
type ThemeChangedMsg struct {
	Theme style.Theme
}

// ExportDoneMsg reports the outcome of a chart export
type ExportDoneMsg struct {
	Paths []string
	Err   error
}

// Send wraps msg in a command
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteLanding Route = iota
	RouteLogin
	RouteDashboard
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteLanding:
		return "landing"
	case RouteLogin:
		return "login"
	case RouteDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// RouteFor maps a controller stage to the screen that presents it
func RouteFor(s stage.Stage) Route {
	switch s {
	case stage.Login:
		return RouteLogin
	case stage.Dashboard:
		return RouteDashboard
	default:
		return RouteLanding
	}
}
