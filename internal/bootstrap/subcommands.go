package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazycode/internal/completion"
	"github.com/chmouel/lazycode/internal/config"
	"github.com/chmouel/lazycode/internal/log"
	"github.com/chmouel/lazycode/internal/models"
	"github.com/chmouel/lazycode/internal/workspace"
)

var loadCLIConfigFunc = loadCLIConfig

// loadCLIConfig loads the configuration file and applies --config overrides.
// A broken file is reported and replaced by the defaults.
func loadCLIConfig(configFileFlag string, configOverrides []string) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(configFileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		if cfg == nil {
			cfg = config.DefaultConfig()
		}
	}

	if len(configOverrides) > 0 {
		if err := cfg.ApplyCLIOverrides(configOverrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	return cfg, nil
}

func treeCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "tree",
		Usage:     "Print the scanned workspace",
		ArgsUsage: "[workspace-dir]",
		Action:    handleTreeAction,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
			&urfavecli.BoolFlag{
				Name:    "paths",
				Aliases: []string{"p"},
				Usage:   "Output workspace-relative file paths only (one per line, suitable for scripting)",
			},
		},
	}
}

func validateTreeFlags(cmd *urfavecli.Command) error {
	if cmd.Bool("json") && cmd.Bool("paths") {
		return fmt.Errorf("--paths and --json are mutually exclusive")
	}
	return nil
}

// handleTreeAction handles the tree subcommand action.
func handleTreeAction(_ context.Context, cmd *urfavecli.Command) error {
	defer func() {
		_ = log.Close()
	}()
	if err := validateTreeFlags(cmd); err != nil {
		return err
	}
	cfg, err := loadCLIConfigFunc(cmd.String("config-file"), cmd.StringSlice("config"))
	if err != nil {
		return err
	}
	root, err := resolveWorkspace(cfg, cmd.Args().First())
	if err != nil {
		return err
	}

	scanner := workspace.NewScanner(cfg.ScanOptions(), log.Logf("scan"))
	tree, err := scanner.Scan(root)
	if err != nil {
		return fmt.Errorf("scan %s: %w", root, err)
	}

	switch {
	case cmd.Bool("json"):
		return outputTreeJSON(os.Stdout, tree)
	case cmd.Bool("paths"):
		for _, rel := range workspace.RelPaths(tree) {
			fmt.Println(rel)
		}
		return nil
	default:
		outputTree(os.Stdout, tree)
		stats := scanner.LastStats()
		fmt.Printf("\n%d directories, %d files\n", stats.Directories, stats.Files)
		return nil
	}
}

// outputTreeJSON outputs the workspace as JSON.
func outputTreeJSON(w io.Writer, tree *models.FileNode) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree)
}

// outputTree draws the workspace with box-drawing connectors.
func outputTree(w io.Writer, tree *models.FileNode) {
	fmt.Fprintln(w, filepath.Base(tree.Path)+"/")
	writeChildren(w, tree, "")
}

func writeChildren(w io.Writer, node *models.FileNode, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1
		connector, indent := "├── ", "│   "
		if last {
			connector, indent = "└── ", "    "
		}
		name := child.Name
		if child.IsDir() {
			name += "/"
		}
		fmt.Fprintln(w, prefix+connector+name)
		if child.IsDir() {
			writeChildren(w, child, prefix+indent)
		}
	}
}

// completionCommand returns the completion subcommand definition.
func completionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "completion",
		Usage:     "Generate shell completion scripts",
		ArgsUsage: "<" + strings.Join(completion.Shells, "|") + ">",
		Action:    handleCompletion,
	}
}

// handleCompletion handles the completion subcommand.
func handleCompletion(_ context.Context, cmd *urfavecli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("usage: lazycode completion <%s>", strings.Join(completion.Shells, "|"))
	}
	return completion.Write(os.Stdout, cmd.Args().First())
}
