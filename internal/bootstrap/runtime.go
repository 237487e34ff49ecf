package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/chmouel/lazycode/internal/app"
	"github.com/chmouel/lazycode/internal/app/handlers"
	"github.com/chmouel/lazycode/internal/config"
	"github.com/chmouel/lazycode/internal/log"
	"github.com/chmouel/lazycode/internal/web"
)

var (
	runTUIFunc = runTUI
	runWebFunc = runWeb
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) } //nolint:gosec
)

// runTUI starts the terminal editor.
func runTUI(ctx context.Context, cfg *config.AppConfig, h *handlers.Handlers) error {
	if !isTerminal() {
		return fmt.Errorf("stdout is not a terminal; use --mode %s to serve the editor over HTTP", config.ModeWeb)
	}

	model := app.NewModel(cfg, h, log.Logf("tui"))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		return err
	}
	return nil
}

// runWeb serves the editor over HTTP until interrupted.
func runWeb(ctx context.Context, cfg *config.AppConfig, h *handlers.Handlers) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(h, cfg, log.Logf("web"))
	fmt.Fprintf(os.Stderr, "lazycode serving %s on http://%s\n", h.State.Root, cfg.Addr)
	return srv.ListenAndServe(ctx, cfg.Addr)
}
