package main

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/rovshanmuradov/myportfolio/internal/stage"
	"github.com/rovshanmuradov/myportfolio/internal/ui"
	"github.com/rovshanmuradov/myportfolio/internal/ui/screen"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *AppModel {
	t.Helper()
	app, err := NewAppModel(context.Background(), AppOptions{
		Seed:     portfolio.DefaultSeed(),
		Theme:    style.ThemeDark,
		Currency: "USD",
	})
	require.NoError(t, err)
	app.Init()
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

func TestAppStartsOnLanding(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, stage.Landing, app.Stage())
	assert.IsType(t, &screen.LandingScreen{}, app.router.Current())
	assert.Contains(t, app.View(), "MyPortfolio")
}

func TestAppStageGating(t *testing.T) {
	app := newTestApp(t)

	// Submit before Enter is refused.
	app.Update(ui.SubmitNameMsg{Name: "Ada"})
	assert.Equal(t, stage.Landing, app.Stage())

	// The dashboard cannot be reached by navigation alone.
	app.Update(ui.RouterMsg{To: ui.RouteDashboard})
	assert.IsType(t, &screen.LandingScreen{}, app.router.Current())

	app.Update(ui.EnterMsg{})
	assert.Equal(t, stage.Login, app.Stage())
	assert.IsType(t, &screen.LoginScreen{}, app.router.Current())

	app.Update(ui.SubmitNameMsg{Name: "   "})
	assert.Equal(t, stage.Login, app.Stage())
	assert.IsType(t, &screen.LoginScreen{}, app.router.Current())

	app.Update(ui.SubmitNameMsg{Name: "  Ada "})
	assert.Equal(t, stage.Dashboard, app.Stage())
	assert.Equal(t, "Ada", app.controller.DisplayName())
	assert.IsType(t, &screen.DashboardScreen{}, app.router.Current())
	assert.Contains(t, app.View(), "Ada's Dashboard")

	// Dashboard is terminal.
	app.Update(ui.EnterMsg{})
	assert.Equal(t, stage.Dashboard, app.Stage())
}

func TestAppKeysReachScreens(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())
	require.Equal(t, stage.Login, app.Stage())

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Grace")})
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())
	require.Equal(t, stage.Dashboard, app.Stage())

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Equal(t, "NFLX", app.vm.SelectedTicker())
	assert.Equal(t, 4, app.vm.Len())
}

func TestAppThemeChange(t *testing.T) {
	app := newTestApp(t)
	app.Update(ui.ThemeChangedMsg{Theme: style.ThemeLight})
	assert.Equal(t, style.ThemeLight, app.opts.Theme)
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppInvalidSeed(t *testing.T) {
	seed := portfolio.DefaultSeed()
	seed.Holdings = append(seed.Holdings, seed.Holdings[0])

	_, err := NewAppModel(context.Background(), AppOptions{Seed: seed})
	assert.ErrorIs(t, err, portfolio.ErrDuplicateTicker)
}

func TestAppUnderSafeModel(t *testing.T) {
	app := newTestApp(t)
	safe := ui.NewSafeModel(app, app.logger)

	next, _ := safe.Update(ui.EnterMsg{})
	assert.Same(t, safe, next)
	assert.Equal(t, stage.Login, app.Stage())
	assert.Same(t, app, safe.Unwrap())
}
