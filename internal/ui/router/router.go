package router

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen represents a screen that can be navigated to
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Router shows exactly one screen at a time. There is no back stack:
// screens only ever move forward.
type Router struct {
	current Screen
	width   int
	height  int
}

// New creates a new router with the initial screen
func New(initialScreen Screen) *Router {
	return &Router{current: initialScreen}
}

// Init initializes the current screen
func (r *Router) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

// Update forwards the message to the current screen
func (r *Router) Update(msg tea.Msg) (*Router, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		r.SetSize(size.Width, size.Height)
		return r, nil
	}
	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// View renders the current screen
func (r *Router) View() string {
	if r.current == nil {
		return "No screen available"
	}
	return r.current.View()
}

// SetSize sets the size for the router and current screen
func (r *Router) SetSize(width, height int) {
	r.width = width
	r.height = height
	if r.current != nil {
		r.current.SetSize(width, height)
	}
}

// Replace swaps in a new screen, sized to the last known window
func (r *Router) Replace(screen Screen) tea.Cmd {
	screen.SetSize(r.width, r.height)
	r.current = screen
	return screen.Init()
}

// Current returns the current screen
func (r *Router) Current() Screen {
	return r.current
}
