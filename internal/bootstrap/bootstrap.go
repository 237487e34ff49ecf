package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazycode/internal/app/handlers"
	"github.com/chmouel/lazycode/internal/app/state"
	"github.com/chmouel/lazycode/internal/buildinfo"
	"github.com/chmouel/lazycode/internal/config"
	"github.com/chmouel/lazycode/internal/log"
	"github.com/chmouel/lazycode/internal/store"
	"github.com/chmouel/lazycode/internal/theme"
	"github.com/chmouel/lazycode/internal/utils"
	"github.com/chmouel/lazycode/internal/workspace"
)

// ErrNotADirectory is returned when the workspace path is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// NewCommand builds the lazycode root command.
func NewCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "lazycode",
		Usage:     "A small code editor for one workspace directory",
		ArgsUsage: "[workspace-dir]",
		Version:   buildinfo.Version(),
		Flags:     globalFlags(),
		Commands: []*urfavecli.Command{
			treeCommand(),
			completionCommand(),
		},
		Action: runAction,
	}
}

// Run parses args (program name first) and runs the selected command.
func Run(ctx context.Context, args []string) error {
	urfavecli.VersionPrinter = func(*urfavecli.Command) {
		fmt.Println(buildinfo.Summary())
	}
	return NewCommand().Run(ctx, args)
}

// runAction is the default action that launches the editor when no
// subcommand is given.
func runAction(ctx context.Context, cmd *urfavecli.Command) error {
	if cmd.Bool("show-themes") {
		printThemes()
		return nil
	}

	// Set up debug logging before loading config
	debugLog := cmd.String("debug-log")
	if debugLog != "" {
		openDebugLog(debugLog)
	}

	cfg, err := loadCLIConfigFunc(cmd.String("config-file"), cmd.StringSlice("config"))
	if err != nil {
		_ = log.Close()
		return err
	}
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
		}
	}()

	// If debug log wasn't set via flag, check if it's in the config
	if debugLog == "" {
		if cfg.DebugLog != "" {
			openDebugLog(cfg.DebugLog)
		} else {
			// No debug log configured, discard any buffered logs
			_ = log.SetFile("")
		}
	}

	if err := applyFlags(cfg, cmd); err != nil {
		return err
	}

	root, err := resolveWorkspace(cfg, cmd.Args().First())
	if err != nil {
		return err
	}
	h, err := newHandlers(cfg, root)
	if err != nil {
		return err
	}

	log.Printf("lazycode %s starting in %s mode on %s", buildinfo.Version(), cfg.Mode, root)
	if cfg.Mode == config.ModeWeb {
		return runWebFunc(ctx, cfg, h)
	}
	return runTUIFunc(ctx, cfg, h)
}

func openDebugLog(path string) {
	if expanded, err := utils.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

// applyFlags layers explicit command-line flags over the configuration.
func applyFlags(cfg *config.AppConfig, cmd *urfavecli.Command) error {
	if name := cmd.String("theme"); name != "" {
		normalized := config.NormalizeThemeName(name)
		if normalized == "" {
			return fmt.Errorf("unknown theme %q", name)
		}
		cfg.Theme = normalized
	}
	if mode := cmd.String("mode"); mode != "" {
		parsed, err := config.ParseMode(mode)
		if err != nil {
			return err
		}
		cfg.Mode = parsed
	}
	if cmd.IsSet("width") {
		if w := cmd.Int("width"); w > 0 {
			cfg.Width = w
		}
	}
	if cmd.IsSet("height") {
		if h := cmd.Int("height"); h > 0 {
			cfg.Height = h
		}
	}
	if addr := cmd.String("addr"); addr != "" {
		cfg.Addr = addr
	}
	if open := cmd.String("open"); open != "" {
		cfg.DefaultFile = open
	}
	return nil
}

// resolveWorkspace picks the workspace directory: the positional argument,
// then the configured one, then the working directory.
func resolveWorkspace(cfg *config.AppConfig, arg string) (string, error) {
	dir := arg
	if dir == "" {
		dir = cfg.Workspace
	}
	if dir == "" {
		dir = "."
	}
	expanded, err := utils.ExpandPath(dir)
	if err != nil {
		return "", fmt.Errorf("error expanding workspace: %w", err)
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return "", fmt.Errorf("workspace: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("workspace %s: %w", expanded, ErrNotADirectory)
	}
	cfg.Workspace = expanded
	return expanded, nil
}

// newHandlers scans root and opens the default file when it exists.
func newHandlers(cfg *config.AppConfig, root string) (*handlers.Handlers, error) {
	scanner := workspace.NewScanner(cfg.ScanOptions(), log.Logf("scan"))
	tree, err := scanner.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	stats := scanner.LastStats()
	log.Printf("scanned %s: %d directories, %d files, %d skipped, %d errors",
		root, stats.Directories, stats.Files, stats.Skipped, stats.Errors)

	h := handlers.New(
		state.New(root, tree),
		store.NewFileStore(cfg.AtomicSave, log.Logf("store")),
		scanner,
		log.Logf("handlers"),
	)
	h.OpenDefault(cfg.DefaultFile)
	return h, nil
}

// printThemes prints available themes, marking the default.
func printThemes() {
	names := theme.AvailableThemes()
	sort.Strings(names)
	defaultName := config.DefaultConfig().Theme
	fmt.Println("Available themes:")
	for _, name := range names {
		marker := " "
		if name == defaultName {
			marker = "*"
		}
		kind := "dark"
		if theme.IsLight(name) {
			kind = "light"
		}
		fmt.Printf("%s %-18s %s\n", marker, name, kind)
	}
}
