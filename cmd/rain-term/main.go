package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"neon-rain/internal/app"
	"neon-rain/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write renderer logs to this file (default: discard)")
	flag.CommandLine.Usage = app.Usage(flag.CommandLine)
	flag.Parse()

	if err := run(cfg, *logPath); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, logPath string) error {
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	deps, err := cfg.Deps(log.New(out, "rain: ", log.LstdFlags))
	if err != nil {
		return err
	}

	screen, err := term.OpenScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	host := term.NewHost(screen, cfg.SurfaceID, cfg.ReduceMotion, deps)
	if cfg.Variant != "" {
		host.Renderer().SetVariant(cfg.Variant)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx, cfg.SurfaceID); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
