package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/udsdoc/udsdoc/cmd/udsdoc/commands"
	"github.com/udsdoc/udsdoc/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("udsdoc"),
		kong.Description("Manage and generate the uds_protocol documentation build configuration."),
		kong.Vars{
			"version": fmt.Sprintf("udsdoc %s (commit %s, built %s)",
				version.Version, version.GitCommit, version.BuildTime),
		},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := ctx.Run(global, &cli); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
