// Command arcalc computes Elden Ring weapon attack rating for a character build.
//
// Usage:
//
//	arcalc search -str 30 -dex 40 -level 25 -two-handing -types Katana -effective
//	arcalc weapon -name "Rivers of Blood" -arc 40
//	arcalc levels
//	arcalc chart -name Uchigatana -attribute dex -out uchigatana.html
//	arcalc import -from weapons.json
//	arcalc --list
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/arcalc/internal/config"
	"github.com/udisondev/arcalc/internal/game/combat"
)

const ConfigPath = "config/arcalc.yaml"

var errUsage = errors.New("usage")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// app — общее состояние для всех подкоманд.
type app struct {
	cfg  config.Calculator
	calc *combat.Calculator
	out  io.Writer
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("ARCALC_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadCalculator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Table output goes to stdout, logs to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", cfgPath, "source", cfg.Data.Source)

	calc, err := combat.NewCalculator(combat.Rules{
		TwoHandingMultiplier: cfg.Rules.TwoHandingMultiplier,
		IneffectivePenalty:   cfg.Rules.IneffectivePenalty,
		GatePassiveScaling:   cfg.Rules.GatePassiveScaling,
	})
	if err != nil {
		return fmt.Errorf("creating calculator: %w", err)
	}

	if len(args) == 0 {
		printUsage(stdout)
		return errUsage
	}
	if args[0] == "--list" || args[0] == "help" {
		printList(stdout)
		return nil
	}

	cmd, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(stdout, "unknown command: %s\n", args[0])
		printList(stdout)
		return errUsage
	}

	a := &app{cfg: cfg, calc: calc, out: stdout}
	if err := cmd.run(ctx, a, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.name, err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
