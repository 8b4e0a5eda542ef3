package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/critcalc/internal/config"
	"github.com/udisondev/critcalc/internal/model"
)

const ConfigPath = "config/critcalc.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("CRITCALC_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadCritCalc(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Debug("config loaded", "path", cfgPath, "weapons", len(cfg.Weapons))

	for _, w := range cfg.Weapons {
		if err := ctx.Err(); err != nil {
			return err
		}
		slog.Info("weapon",
			"name", w.Name,
			"crit", w.CritMultiplier,
			"multiplier", w.CritDamageMultiplier())
	}

	// Аргументы — JSON-скаляры: число или null.
	for _, arg := range args {
		c, err := evalScalar(arg)
		if err != nil {
			return fmt.Errorf("argument %q: %w", arg, err)
		}
		fmt.Fprintf(out, "%s\t%g\n", c, c.Multiplier())
	}

	return nil
}

func evalScalar(arg string) (model.CritMultiplier, error) {
	var c model.CritMultiplier
	if err := c.UnmarshalJSON([]byte(arg)); err != nil {
		return model.CritMultiplier{}, err
	}
	return c, nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info for unknown values.
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
