package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the host tool settings. The firmware has no runtime
// configuration; its constants live in the sketch itself.
type Config struct {
	AppEnv   string
	LogLevel slog.Level

	SerialPort string
	SerialBaud int
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	serialPort := strings.TrimSpace(os.Getenv("SERIAL_PORT"))
	if serialPort == "" {
		serialPort = "/dev/ttyUSB0"
	}

	serialBaudStr := strings.TrimSpace(os.Getenv("SERIAL_BAUD"))
	if serialBaudStr == "" {
		serialBaudStr = "115200"
	}
	serialBaud, err := strconv.Atoi(serialBaudStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SERIAL_BAUD %q: %w", serialBaudStr, err)
	}
	if serialBaud <= 0 {
		return Config{}, fmt.Errorf("SERIAL_BAUD must be positive, got %d", serialBaud)
	}

	return Config{
		AppEnv:     appEnv,
		LogLevel:   level,
		SerialPort: serialPort,
		SerialBaud: serialBaud,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
