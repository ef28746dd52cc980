package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/myportfolio/internal/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockModel is a test UI model
type mockModel struct {
	panicOnUpdate bool
	panicOnView   bool
	updates       int
}

func (m *mockModel) Init() tea.Cmd { return nil }

func (m *mockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.updates++
	if m.panicOnUpdate {
		panic("update panic test")
	}
	return m, tea.Quit
}

func (m *mockModel) View() string {
	if m.panicOnView {
		panic("view panic test")
	}
	return "Test UI"
}

func newTestHandler(run func(*tea.Program) error) *RecoveryHandler {
	handler := NewRecoveryHandler(zap.NewNop(), func() (tea.Model, []tea.ProgramOption) {
		return &mockModel{}, []tea.ProgramOption{tea.WithoutSignalHandler()}
	})
	handler.restartDelay = time.Millisecond
	handler.run = run
	return handler
}

func TestRecoveryHandlerRestartsAfterPanic(t *testing.T) {
	runs := 0
	handler := newTestHandler(func(*tea.Program) error {
		runs++
		if runs < 3 {
			panic("crash")
		}
		return nil
	})

	require.NoError(t, handler.RunWithRecovery())
	assert.Equal(t, 3, runs)
	assert.Equal(t, 2, handler.RestartCount())
}

func TestRecoveryHandlerGivesUp(t *testing.T) {
	boom := errors.New("boom")
	handler := newTestHandler(func(*tea.Program) error {
		return boom
	})
	handler.maxRestarts = 2

	err := handler.RunWithRecovery()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, handler.RestartCount())
}

func TestSafeModelRecoversUpdatePanic(t *testing.T) {
	inner := &mockModel{panicOnUpdate: true}
	safe := NewSafeModel(inner, zap.NewNop())

	model, cmd := safe.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Same(t, safe, model)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, inner.updates)
	assert.Same(t, inner, safe.Unwrap())
}

func TestSafeModelRecoversViewPanic(t *testing.T) {
	safe := NewSafeModel(&mockModel{panicOnView: true}, zap.NewNop())
	assert.Contains(t, safe.View(), "View crashed")

	ok := NewSafeModel(&mockModel{}, zap.NewNop())
	assert.Equal(t, "Test UI", ok.View())
}

func TestRouteFor(t *testing.T) {
	assert.Equal(t, RouteLanding, RouteFor(stage.Landing))
	assert.Equal(t, RouteLogin, RouteFor(stage.Login))
	assert.Equal(t, RouteDashboard, RouteFor(stage.Dashboard))

	assert.Equal(t, "landing", RouteLanding.String())
	assert.Equal(t, "dashboard", RouteDashboard.String())
	assert.Equal(t, "unknown", Route(9).String())
}
