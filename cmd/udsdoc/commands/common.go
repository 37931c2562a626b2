package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/udsdoc/udsdoc/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"site.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Show     ShowCmd     `cmd:"" help:"Print the effective configuration after defaults"`
	Check    CheckCmd    `cmd:"" help:"Validate the configuration structurally"`
	Generate GenerateCmd `cmd:"" help:"Generate the documentation builder configuration and scaffolding"`
	Watch    WatchCmd    `cmd:"" help:"Watch the configuration file and regenerate on change"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig resolves the effective record: the config file when present,
// the built-in defaults otherwise. Every invocation constructs a fresh
// record; nothing is cached between commands.
func loadConfig(root *CLI) (*config.SiteConfig, error) {
	if _, err := os.Stat(root.Config); os.IsNotExist(err) {
		slog.Debug("No configuration file, using built-in defaults", "config_path", root.Config)
		def := config.Default()
		return &def, nil
	}
	return config.Load(root.Config)
}
