package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct{}

func (s *ShowCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
