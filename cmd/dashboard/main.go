package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/myportfolio/internal/config"
	"github.com/rovshanmuradov/myportfolio/internal/export"
	"github.com/rovshanmuradov/myportfolio/internal/logger"
	"github.com/rovshanmuradov/myportfolio/internal/ui"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	themeName := flag.String("theme", "", "Initial colour theme: dark or light")
	flag.Parse()

	// Create context with signal handling
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	switch *themeName {
	case "":
	case config.ThemeDark, config.ThemeLight:
		cfg.Theme = *themeName
	default:
		log.Fatalf("Invalid theme %q: use %s or %s", *themeName, config.ThemeDark, config.ThemeLight)
	}

	// Initialize loggers
	console := logger.CreatePrettyLogger(os.Stderr, cfg.DebugLogging)
	defer func() {
		_ = console.Sync()
	}()

	logCfg := logger.DefaultConfig()
	logCfg.LogFile = cfg.LogFile
	logCfg.Development = cfg.DebugLogging
	appLogger, err := logger.New(logCfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	opts := AppOptions{
		Seed:     cfg.Seed(),
		Theme:    style.ParseTheme(cfg.Theme),
		Currency: cfg.Currency,
		Exporter: export.NewExporter(cfg.ExportDir, appLogger.WithComponent("export")),
		Logger:   appLogger,
	}

	// Fail before taking over the terminal if the seed is unusable.
	first, err := NewAppModel(rootCtx, opts)
	if err != nil {
		log.Fatalf("Failed to load portfolio: %v", err)
	}

	console.Info("💹 Starting MyPortfolio",
		zap.String("theme", cfg.Theme),
		zap.String("log_file", cfg.LogFile))

	uiLogger := appLogger.WithComponent("ui")
	handler := ui.NewRecoveryHandler(uiLogger, func() (tea.Model, []tea.ProgramOption) {
		model := first
		if model == nil {
			// Each restart is a fresh session back on the landing screen.
			fresh, err := NewAppModel(rootCtx, opts)
			if err != nil {
				panic(err)
			}
			model = fresh
		}
		first = nil
		return ui.NewSafeModel(model, uiLogger), []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		}
	})

	go func() {
		<-rootCtx.Done()
		handler.Stop()
	}()

	if err := handler.RunWithRecovery(); err != nil {
		console.Error("💥 TUI application failed", zap.Error(err))
		os.Exit(1)
	}

	console.Info("🛑 MyPortfolio stopped", zap.Int("restarts", handler.RestartCount()))
}
