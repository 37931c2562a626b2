package commands

import (
	"fmt"

	"github.com/udsdoc/udsdoc/internal/metrics"
	"github.com/udsdoc/udsdoc/internal/sphinx"
)

// GenerateCmd implements the 'generate' command: one build invocation's
// worth of work. The record is loaded once, rendered, and discarded.
type GenerateCmd struct {
	Docs string `short:"d" help:"Documentation source directory" default:"./docs"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gen := sphinx.NewGenerator(cfg, g.Docs)
	if err := gen.Generate(metrics.TriggerManual); err != nil {
		return err
	}

	fmt.Printf("Builder configuration written: %s\n", gen.ConfigPath())
	return nil
}
