// soilmon tails the node's diagnostic serial stream and decodes uplink
// payload lines into engineering units.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.bug.st/serial"

	"github.com/ridichi14/Temperatura-sol-si-aer/internal/config"
	"github.com/ridichi14/Temperatura-sol-si-aer/internal/console"
	"github.com/ridichi14/Temperatura-sol-si-aer/internal/logging"
)

var version = "dev"
var appName = "soilmon"

func main() {
	// Optional .env next to the binary; real env wins.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	slog.Info("starting",
		"app", appName,
		"version", version,
		"port", cfg.SerialPort,
		"baud", cfg.SerialBaud,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}

	slog.Info("shutting down")
}

func run(ctx context.Context, cfg config.Config) error {
	mode := &serial.Mode{
		BaudRate: cfg.SerialBaud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(cfg.SerialPort, mode)
	if err != nil {
		return fmt.Errorf("serial open %s: %w", cfg.SerialPort, err)
	}

	// Closing the port unblocks the scanner when the context ends.
	go func() {
		<-ctx.Done()
		_ = port.Close()
	}()

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()

		sample, isUplink, err := console.ParseUplink(line)
		switch {
		case err != nil:
			slog.Warn("bad uplink line", "line", line, "err", err)
		case isUplink:
			slog.Info("uplink",
				"soil_pct", sample.SoilPercent,
				"object_temp_c", sample.ObjectTempC,
				"battery_v", sample.BatteryVolts,
			)
		default:
			slog.Debug("node", "line", line)
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("serial read: %w", err)
	}
	return nil
}
