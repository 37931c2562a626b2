package commands

import (
	"fmt"

	"github.com/udsdoc/udsdoc/internal/config"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct{}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	fmt.Printf("Configuration OK: project %s, release %s, theme %s, %d extension(s)\n",
		cfg.Project, cfg.Release, cfg.HTMLTheme, len(cfg.Extensions))
	return nil
}
