package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// Snapshot is a read-only copy of the view model taken on the UI goroutine,
// so exports can run in the background.
type Snapshot struct {
	Holdings     []portfolio.Holding `json:"holdings"`
	Total        decimal.Decimal     `json:"total"`
	Distribution []portfolio.Slice   `json:"distribution"`
	Selected     string              `json:"selected"`
	Performance  portfolio.Series    `json:"performance"`
	Currency     string              `json:"currency"`
}

// Take copies the current state of vm.
func Take(vm *portfolio.ViewModel, currency string) Snapshot {
	snap := Snapshot{
		Holdings:     vm.Holdings(),
		Total:        vm.TotalValue(),
		Distribution: vm.Distribution(),
		Selected:     vm.SelectedTicker(),
		Currency:     currency,
	}
	if series, err := vm.PerformanceFor(snap.Selected); err == nil {
		snap.Performance = series
	}
	return snap
}

// Exporter writes portfolio snapshots to disk
type Exporter struct {
	logger    *zap.Logger
	outputDir string
	now       func() time.Time
}

// NewExporter creates an exporter writing into outputDir
func NewExporter(outputDir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		logger:    logger.Named("export"),
		outputDir: outputDir,
		now:       time.Now,
	}
}

// Export writes the holdings table as CSV or the full snapshot as JSON
func (e *Exporter) Export(snap Snapshot, format ExportFormat) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(e.outputDir, e.generateFilename("portfolio", string(format)))

	var err error
	switch format {
	case FormatCSV:
		err = exportToCSV(snap, outputPath)
	case FormatJSON:
		err = e.exportToJSON(snap, outputPath)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return "", err
	}

	e.logger.Info("Portfolio exported",
		zap.String("file", outputPath),
		zap.Int("holdings", len(snap.Holdings)),
		zap.String("format", string(format)))

	return outputPath, nil
}

// ExportCharts renders the distribution and performance charts to PNG files
// concurrently and returns their paths in that order.
func (e *Exporter) ExportCharts(ctx context.Context, snap Snapshot) ([]string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := []string{
		filepath.Join(e.outputDir, e.generateFilename("distribution", "png")),
		filepath.Join(e.outputDir, e.generateFilename("performance_"+snap.Selected, "png")),
	}
	renderers := []func() ([]byte, error){
		func() ([]byte, error) { return RenderDistributionChart(snap.Distribution) },
		func() ([]byte, error) { return RenderPerformanceChart(snap.Selected, snap.Performance) },
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range renderers {
		i := i // per-iteration copy (go < 1.22 loop semantics)
		g.Go(func() error {
			data, err := renderers[i]()
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.WriteFile(paths[i], data, 0644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("Charts exported",
		zap.Strings("files", paths),
		zap.String("selected", snap.Selected))

	return paths, nil
}

func (e *Exporter) generateFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, e.now().Format("20060102_150405"), ext)
}

// CSVHeaders returns the holdings table header row
func CSVHeaders() []string {
	return []string{"ticker", "name", "price", "change_percent", "shares", "value"}
}

func holdingRow(h portfolio.Holding) []string {
	return []string{
		h.Ticker,
		h.Name,
		strconv.FormatFloat(h.Price, 'f', -1, 64),
		strconv.FormatFloat(h.ChangePercent, 'f', -1, 64),
		strconv.FormatFloat(h.Shares, 'f', -1, 64),
		h.Value().StringFixed(2),
	}
}

func exportToCSV(snap Snapshot, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(CSVHeaders()); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, h := range snap.Holdings {
		if err := writer.Write(holdingRow(h)); err != nil {
			return fmt.Errorf("failed to write holding: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (e *Exporter) exportToJSON(snap Snapshot, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	exportData := struct {
		ExportTime time.Time `json:"export_time"`
		Snapshot
	}{
		ExportTime: e.now(),
		Snapshot:   snap,
	}

	if err := encoder.Encode(exportData); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
