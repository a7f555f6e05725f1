package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/inkwell"
	"github.com/aretw0/inkwell/internal/config"
	"github.com/aretw0/inkwell/internal/presentation/tui"
)

// RunSession executes one editing session driven by line input.
func RunSession(opts RunOptions, cfg config.Config) error {
	s, err := createSession(cfg, opts.Metrics)
	if err != nil {
		return err
	}

	in, out := opts.in(), opts.out()
	interactive := !opts.Headless && isTerminal(in) && isTerminal(out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := inkwell.NewRunner()
	r.Input = in
	r.Output = out
	r.Headless = !interactive
	r.Keymap = s.keys

	if interactive {
		tui.PrintBanner(out, inkwell.Version)
		render, err := tui.NewRenderer(cfg.Theme)
		if err != nil {
			s.logger.Warn("falling back to plain markdown", "err", err)
		} else {
			r.Renderer = render
		}
		printSystemMessage(out, "Type a command (TOGGLE_BOLD), a hotkey (mod+b), 'show', or 'exit'.")
	}

	runErr := r.Run(ctx, s.editor)
	if s.collector != nil {
		if err := WriteMetrics(out, s.collector.Registry()); err != nil {
			s.logger.Error("failed to dump metrics", "err", err)
		}
	}

	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("session failed: %w", runErr)
	}
	return nil
}
