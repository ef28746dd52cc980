package screen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/myportfolio/internal/export"
	"github.com/rovshanmuradov/myportfolio/internal/logger"
	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/rovshanmuradov/myportfolio/internal/ui"
	"github.com/rovshanmuradov/myportfolio/internal/ui/component"
	"github.com/rovshanmuradov/myportfolio/internal/ui/router"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
	"go.uber.org/zap"
)

const activityLines = 5

// DashboardConfig holds what the dashboard needs from the application
type DashboardConfig struct {
	Context     context.Context
	ViewModel   *portfolio.ViewModel
	DisplayName string
	Theme       style.Theme
	Currency    string

	// Optional
	Exporter *export.Exporter
	Activity *logger.Recent
	Logger   *zap.Logger
}

// DashboardScreen shows the portfolio: value header, distribution, the
// selected stock's week and one card per holding.
type DashboardScreen struct {
	ctx    context.Context
	width  int
	height int
	keyMap ui.KeyMap
	logger *zap.Logger

	vm          *portfolio.ViewModel
	displayName string
	theme       style.Theme
	currency    string
	exporter    *export.Exporter
	activity    *logger.Recent

	// UI components
	header       *component.StatusHeader
	distribution *component.Distribution
	chart        *component.LineChart
	cards        *component.CardGrid
	helpBar      *component.HelpBar
	styles       style.Styles

	// State
	status      string
	statusError bool
	exporting   bool
}

// NewDashboardScreen creates the dashboard for an already seeded view model
func NewDashboardScreen(cfg DashboardConfig) *DashboardScreen {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	m := &DashboardScreen{
		ctx:         cfg.Context,
		keyMap:      ui.DefaultKeyMap(),
		logger:      cfg.Logger.Named("dashboard"),
		vm:          cfg.ViewModel,
		displayName: cfg.DisplayName,
		theme:       cfg.Theme,
		currency:    cfg.Currency,
		exporter:    cfg.Exporter,
		activity:    cfg.Activity,
		width:       80,
	}
	m.applyTheme()
	return m
}

// Init initializes the dashboard
func (m *DashboardScreen) Init() tea.Cmd {
	m.logger.Info("Dashboard opened",
		zap.String("name", m.displayName),
		zap.Int("holdings", m.vm.Len()))
	return nil
}

// Update handles screen updates
func (m *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case ui.StatusMsg:
		m.setStatus(msg.Text, msg.Error)

	case ui.ExportDoneMsg:
		m.exporting = false
		if msg.Err != nil {
			m.logger.Error("Export failed", zap.Error(msg.Err))
			m.setStatus("Export failed: "+msg.Err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("Exported %d files to %s", len(msg.Paths), exportDir(msg.Paths)), false)
		}
	}
	return m, nil
}

func (m *DashboardScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Left), key.Matches(msg, m.keyMap.ShiftTab):
		m.moveSelection(-1)

	case key.Matches(msg, m.keyMap.Right), key.Matches(msg, m.keyMap.Tab):
		m.moveSelection(1)

	case key.Matches(msg, m.keyMap.Up):
		m.moveSelection(-m.cards.Columns())

	case key.Matches(msg, m.keyMap.Down):
		m.moveSelection(m.cards.Columns())

	case key.Matches(msg, m.keyMap.AddHolding):
		m.addMockHolding()

	case key.Matches(msg, m.keyMap.ToggleTheme):
		m.theme = m.theme.Toggle()
		m.applyTheme()
		m.logger.Debug("Theme changed", zap.String("theme", m.theme.String()))
		return ui.Send(ui.ThemeChangedMsg{Theme: m.theme})

	case key.Matches(msg, m.keyMap.Export):
		return m.exportCmd()
	}
	return nil
}

// moveSelection moves the selected card by delta positions, wrapping around.
func (m *DashboardScreen) moveSelection(delta int) {
	n := m.vm.Len()
	if n == 0 {
		return
	}
	idx := m.vm.IndexOf(m.vm.SelectedTicker())
	next := ((idx+delta)%n + n) % n
	if next == idx {
		return
	}

	ticker := m.vm.Holdings()[next].Ticker
	if err := m.vm.SelectTicker(ticker); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.refresh()
}

func (m *DashboardScreen) addMockHolding() {
	holding, series := portfolio.MockAddition()
	err := m.vm.AddHolding(holding, series)
	switch {
	case errors.Is(err, portfolio.ErrDuplicateTicker):
		m.setStatus(holding.Ticker+" is already in your portfolio", true)
	case err != nil:
		m.setStatus(err.Error(), true)
	default:
		m.setStatus(fmt.Sprintf("Added %s (%s)", holding.Name, holding.Ticker), false)
	}
	m.refresh()
}

// exportCmd snapshots the view model here, on the UI goroutine, and writes
// the files in the background.
func (m *DashboardScreen) exportCmd() tea.Cmd {
	if m.exporter == nil {
		m.setStatus("Export is not configured", true)
		return nil
	}
	if m.exporting {
		return nil
	}
	m.exporting = true
	m.setStatus("Exporting...", false)

	snap := export.Take(m.vm, m.currency)
	exporter := m.exporter
	ctx := m.ctx
	return func() tea.Msg {
		paths, err := exporter.ExportCharts(ctx, snap)
		if err != nil {
			return ui.ExportDoneMsg{Err: err}
		}
		csvPath, err := exporter.Export(snap, export.FormatCSV)
		if err != nil {
			return ui.ExportDoneMsg{Err: err}
		}
		return ui.ExportDoneMsg{Paths: append(paths, csvPath)}
	}
}

func exportDir(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return filepath.Dir(paths[0])
}

func (m *DashboardScreen) setStatus(text string, isError bool) {
	m.status = text
	m.statusError = isError
}

// applyTheme rebuilds every styled component for the current theme.
func (m *DashboardScreen) applyTheme() {
	m.styles = style.NewStyles(m.theme)
	m.header = component.NewStatusHeader(m.styles, m.theme, m.currency).
		SetDisplayName(m.displayName)
	m.distribution = component.NewDistribution(m.styles.Palette, m.currency)
	m.chart = component.NewLineChart(m.styles.Palette)
	m.cards = component.NewCardGrid(m.styles, m.currency)
	m.helpBar = component.NewHelpBar(m.styles.Palette).
		SetKeyBindings(m.keyMap.ContextualHelp(ui.RouteDashboard))
	m.SetSize(m.width, m.height)
}

// refresh pushes the view model state into the components.
func (m *DashboardScreen) refresh() {
	m.header.SetTotal(m.vm.TotalValue())
	m.distribution.SetData(m.vm.Distribution(), m.vm.Weights())

	holdings := m.vm.Holdings()
	m.cards.SetHoldings(holdings).SetSelected(m.vm.SelectedTicker())
	for _, h := range holdings {
		if series, err := m.vm.PerformanceFor(h.Ticker); err == nil {
			m.cards.SetTrend(h.Ticker, series.Values())
		}
	}

	if series, err := m.vm.PerformanceFor(m.vm.SelectedTicker()); err == nil {
		m.chart.SetSeries(series)
	}
}

// View renders the dashboard
func (m *DashboardScreen) View() string {
	var content strings.Builder

	content.WriteString(m.header.View())
	content.WriteString("\n")

	panelWidth := style.AdaptiveWidth(m.width, 48)
	distribution := m.styles.Panel.Width(panelWidth).Render(
		m.styles.Subtitle.Render("Stock Distribution") + "\n\n" + m.distribution.View())
	performance := m.styles.Panel.Width(panelWidth).Render(
		m.styles.Subtitle.Render("Performance: "+m.vm.SelectedTicker()) + "\n\n" + m.chart.View())
	content.WriteString(style.AdaptiveJoinHorizontal(m.width, distribution, performance))
	content.WriteString("\n")

	content.WriteString(m.cards.View())
	content.WriteString("\n")

	if activity := m.renderActivity(); activity != "" {
		content.WriteString(activity)
		content.WriteString("\n")
	}

	if m.status != "" {
		if m.statusError {
			content.WriteString(m.styles.Error.Render("✗ " + m.status))
		} else {
			content.WriteString(m.styles.Success.Render("✓ " + m.status))
		}
		content.WriteString("\n")
	}

	content.WriteString(m.helpBar.View())
	return content.String()
}

func (m *DashboardScreen) renderActivity() string {
	if m.activity == nil {
		return ""
	}
	entries := m.activity.Entries(activityLines)
	if len(entries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %-5s %s",
			e.Time.Format("15:04:05"), strings.ToUpper(e.Level.String()), e.Message))
	}
	return m.styles.Muted.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize sets the screen dimensions
func (m *DashboardScreen) SetSize(width, height int) {
	m.width = width
	m.height = height

	panelWidth := style.AdaptiveWidth(width, 48)
	m.header.SetWidth(width)
	m.distribution.SetWidth(max(panelWidth-8, 10))
	m.chart.SetSize(max(panelWidth-16, 10), 8)
	m.cards.SetWidth(width)
	m.helpBar.SetWidth(width)
	m.refresh()
}

// Theme returns the active theme
func (m *DashboardScreen) Theme() style.Theme {
	return m.theme
}

// Status returns the status line text and whether it reports an error
func (m *DashboardScreen) Status() (string, bool) {
	return m.status, m.statusError
}
