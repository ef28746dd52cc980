// =============================
// File: internal/stage/stage.go
// =============================
package stage

import (
	"strings"

	"go.uber.org/zap"
)

// Stage identifies the screen that may be presented.
type Stage int

const (
	Landing Stage = iota
	Login
	Dashboard
)

// String returns the string representation of the stage
func (s Stage) String() string {
	switch s {
	case Landing:
		return "landing"
	case Login:
		return "login"
	case Dashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Event is a user intent that may move the controller to another stage.
type Event int

const (
	EventEnter Event = iota
	EventSubmit
)

func (e Event) String() string {
	switch e {
	case EventEnter:
		return "enter"
	case EventSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// transitions lists every allowed move. Dashboard has no outgoing edges.
var transitions = map[Stage]map[Event]Stage{
	Landing: {EventEnter: Login},
	Login:   {EventSubmit: Dashboard},
}

// Controller tracks the active stage and the entered display name.
type Controller struct {
	stage       Stage
	displayName string
	logger      *zap.Logger
}

// NewController returns a controller in the Landing stage.
func NewController(logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		stage:  Landing,
		logger: logger.Named("stage"),
	}
}

// Stage returns the active stage.
func (c *Controller) Stage() Stage {
	return c.stage
}

// DisplayName returns the name accepted by Submit, or "" before that.
func (c *Controller) DisplayName() string {
	return c.displayName
}

// Enter moves Landing to Login. It reports whether the transition happened.
func (c *Controller) Enter() bool {
	return c.fire(EventEnter)
}

// CanSubmit reports whether Submit(name) would be accepted in the current stage.
func (c *Controller) CanSubmit(name string) bool {
	if _, ok := transitions[c.stage][EventSubmit]; !ok {
		return false
	}
	return strings.TrimSpace(name) != ""
}

// Submit moves Login to Dashboard and stores the trimmed name.
// Blank names are refused and leave the controller untouched.
func (c *Controller) Submit(name string) bool {
	if !c.CanSubmit(name) {
		c.logger.Debug("Submit refused",
			zap.Stringer("stage", c.stage),
			zap.Bool("blank_name", strings.TrimSpace(name) == ""))
		return false
	}
	if !c.fire(EventSubmit) {
		return false
	}
	c.displayName = strings.TrimSpace(name)
	return true
}

func (c *Controller) fire(event Event) bool {
	next, ok := transitions[c.stage][event]
	if !ok {
		c.logger.Debug("Transition refused",
			zap.Stringer("stage", c.stage),
			zap.Stringer("event", event))
		return false
	}

	c.logger.Debug("Stage changed",
		zap.Stringer("from", c.stage),
		zap.Stringer("to", next))
	c.stage = next
	return true
}
