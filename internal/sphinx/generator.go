package sphinx

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/udsdoc/udsdoc/internal/config"
	"github.com/udsdoc/udsdoc/internal/logfields"
	"github.com/udsdoc/udsdoc/internal/metrics"
)

// Generator materializes a loaded SiteConfig into the docs tree the external
// Sphinx build consumes: the conf.py file plus the directories the record
// declares. It never runs the external build itself.
type Generator struct {
	config   *config.SiteConfig
	docsDir  string
	recorder metrics.Recorder
}

// NewGenerator creates a generator bound to a configuration record and a
// docs directory.
func NewGenerator(cfg *config.SiteConfig, docsDir string) *Generator {
	return &Generator{config: cfg, docsDir: filepath.Clean(docsDir), recorder: metrics.NoopRecorder{}}
}

// WithRecorder swaps the metrics recorder (NoopRecorder by default).
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r != nil {
		g.recorder = r
	}
	return g
}

// Generate writes the builder configuration and scaffolds the declared
// directory layout. The record is read-only throughout; running Generate
// twice with the same record produces identical output.
func (g *Generator) Generate(trigger metrics.TriggerLabel) error {
	start := time.Now()

	if err := config.ValidateConfig(g.config); err != nil {
		g.recorder.IncGenerateResult(trigger, metrics.ResultFailed)
		return fmt.Errorf("invalid site configuration: %w", err)
	}

	if err := g.writeConfig(); err != nil {
		g.recorder.IncGenerateResult(trigger, metrics.ResultFailed)
		return err
	}
	if err := g.scaffold(); err != nil {
		g.recorder.IncGenerateResult(trigger, metrics.ResultFailed)
		return err
	}

	g.recorder.ObserveGenerateDuration(time.Since(start))
	g.recorder.IncGenerateResult(trigger, metrics.ResultSuccess)

	slog.Info("Generated documentation configuration",
		logfields.DocsDir(g.docsDir),
		logfields.Project(g.config.Project),
		logfields.Theme(g.config.HTMLTheme),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return nil
}

// ConfigPath returns the path of the generated builder configuration file.
func (g *Generator) ConfigPath() string {
	return filepath.Join(g.docsDir, "conf.py")
}
