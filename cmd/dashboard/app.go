package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/myportfolio/internal/export"
	"github.com/rovshanmuradov/myportfolio/internal/logger"
	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/rovshanmuradov/myportfolio/internal/stage"
	"github.com/rovshanmuradov/myportfolio/internal/ui"
	"github.com/rovshanmuradov/myportfolio/internal/ui/router"
	"github.com/rovshanmuradov/myportfolio/internal/ui/screen"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
	"go.uber.org/zap"
)

// AppOptions configures one dashboard session
type AppOptions struct {
	Seed     portfolio.Seed
	Theme    style.Theme
	Currency string
	Exporter *export.Exporter
	Logger   *logger.Logger
}

// AppModel represents the main TUI application model. The stage controller
// decides which screen the router shows.
type AppModel struct {
	ctx        context.Context
	router     *router.Router
	controller *stage.Controller
	vm         *portfolio.ViewModel
	opts       AppOptions
	logger     *zap.Logger
	width      int
	height     int
}

// NewAppModel creates a new application model on the landing screen
func NewAppModel(ctx context.Context, opts AppOptions) (*AppModel, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	vm, err := portfolio.New(opts.Seed, opts.Logger.WithComponent("portfolio"))
	if err != nil {
		return nil, err
	}

	m := &AppModel{
		ctx:        ctx,
		controller: stage.NewController(opts.Logger.WithComponent("stage")),
		vm:         vm,
		opts:       opts,
		logger:     opts.Logger.WithComponent("app"),
	}
	m.router = router.New(m.screenFor(m.controller.Stage()))
	return m, nil
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return m.router.Init()
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ui.EnterMsg:
		if m.controller.Enter() {
			return m, m.show()
		}
		return m, nil

	case ui.SubmitNameMsg:
		if m.controller.Submit(msg.Name) {
			m.logger.Info("Signed in", zap.String("name", m.controller.DisplayName()))
			return m, m.show()
		}
		return m, nil

	case ui.RouterMsg:
		// Only the screen for the current stage can be shown.
		if msg.To != ui.RouteFor(m.controller.Stage()) {
			m.logger.Debug("Navigation refused",
				zap.Stringer("to", msg.To),
				zap.Stringer("stage", m.controller.Stage()))
			return m, nil
		}
		return m, m.show()

	case ui.ThemeChangedMsg:
		m.opts.Theme = msg.Theme
		m.logger.Info("Theme changed", zap.Stringer("theme", msg.Theme))
		return m, nil
	}

	var cmd tea.Cmd
	m.router, cmd = m.router.Update(msg)
	return m, cmd
}

// show replaces the current screen with the one for the controller's stage
func (m *AppModel) show() tea.Cmd {
	return m.router.Replace(m.screenFor(m.controller.Stage()))
}

func (m *AppModel) screenFor(s stage.Stage) router.Screen {
	switch ui.RouteFor(s) {
	case ui.RouteLogin:
		return screen.NewLoginScreen(m.opts.Theme, m.controller.CanSubmit)

	case ui.RouteDashboard:
		return screen.NewDashboardScreen(screen.DashboardConfig{
			Context:     m.ctx,
			ViewModel:   m.vm,
			DisplayName: m.controller.DisplayName(),
			Theme:       m.opts.Theme,
			Currency:    m.opts.Currency,
			Exporter:    m.opts.Exporter,
			Activity:    m.opts.Logger.Recent(),
			Logger:      m.opts.Logger.WithComponent("ui"),
		})

	default:
		return screen.NewLandingScreen(m.opts.Theme)
	}
}

// View renders the application
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return m.router.View()
}

// Stage returns the controller's current stage
func (m *AppModel) Stage() stage.Stage {
	return m.controller.Stage()
}
