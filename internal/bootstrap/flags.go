// Package bootstrap wires the lazycode command line to the terminal and web
// runtimes.
package bootstrap

import (
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazycode/internal/config"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   fmt.Sprintf("Runtime to start (%s or %s)", config.ModeTUI, config.ModeWeb),
		},
		&urfavecli.IntFlag{
			Name:  "width",
			Usage: fmt.Sprintf("Window width: page pixels in web mode, columns in the terminal (default %d)", config.DefaultWidth),
		},
		&urfavecli.IntFlag{
			Name:  "height",
			Usage: fmt.Sprintf("Window height: page pixels in web mode, rows in the terminal (default %d)", config.DefaultHeight),
		},
		&urfavecli.StringFlag{
			Name:  "addr",
			Usage: fmt.Sprintf("Listen address of the web mode (default %s)", config.DefaultAddr),
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:    "open",
			Aliases: []string{"o"},
			Usage:   fmt.Sprintf("Workspace file opened at startup (default %s)", config.DefaultFile),
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.BoolFlag{
			Name:  "show-themes",
			Usage: "List available themes",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=lc.key=value",
		},
	}
}

// outputAllFlags prints the long form of every flag, one per line.
func outputAllFlags(cmd *urfavecli.Command) {
	for _, flag := range cmd.Flags {
		for _, name := range flag.Names() {
			if len(name) > 1 {
				fmt.Printf("--%s\n", name)
			}
		}
	}
}
