package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/linelife/config"
)

// csvLog appends rows of one record type to a CSV file, writing the header once.
type csvLog[T any] struct {
	name   string
	file   *os.File
	header bool
}

func openCSVLog[T any](dir, name string) (*csvLog[T], error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvLog[T]{name: name, file: f}, nil
}

func (l *csvLog[T]) append(row T) error {
	rows := []T{row}
	var err error
	if l.header {
		err = gocsv.MarshalWithoutHeaders(rows, l.file)
	} else {
		err = gocsv.Marshal(rows, l.file)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", l.name, err)
	}
	l.header = true
	return nil
}

func (l *csvLog[T]) close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// OutputManager writes run artifacts into one directory: telemetry.csv,
// perf.csv, config.yaml and population snapshots.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir       string
	telemetry *csvLog[WindowStats]
	perf      *csvLog[PerfStatsCSV]
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	telemetry, err := openCSVLog[WindowStats](dir, "telemetry.csv")
	if err != nil {
		return nil, err
	}
	perf, err := openCSVLog[PerfStatsCSV](dir, "perf.csv")
	if err != nil {
		telemetry.close()
		return nil, err
	}

	return &OutputManager{dir: dir, telemetry: telemetry, perf: perf}, nil
}

// WriteConfig saves the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends a window to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.telemetry.append(stats)
}

// WritePerf appends a perf window to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.append(stats.ToCSV(windowEnd))
}

// WriteSnapshot saves snap under the snapshots subdirectory.
func (om *OutputManager) WriteSnapshot(snap *Snapshot) (string, error) {
	if om == nil {
		return "", nil
	}
	return SaveSnapshot(snap, filepath.Join(om.dir, "snapshots"))
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files and returns the first error.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	err := om.telemetry.close()
	if perr := om.perf.close(); perr != nil && err == nil {
		err = perr
	}
	return err
}
