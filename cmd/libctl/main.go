package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Astemirdum/library-console/gateway/cli"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/Astemirdum/library-console/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type config struct {
	LibraryAPI  libapi.Config
	Log         logger.Log
	SessionFile string `envconfig:"LIBCTL_SESSION_FILE"`
}

func main() {
	_ = godotenv.Load() //nolint:errcheck

	cfg := config{Log: logger.Log{LogLevel: zapcore.WarnLevel}}
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if cfg.SessionFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.SessionFile = filepath.Join(dir, "libctl", "session.json")
		}
	}
	if cfg.Log.Sink == "" {
		cfg.Log.Sink = os.DevNull
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, cli.Options{
		API:         cfg.LibraryAPI,
		SessionFile: cfg.SessionFile,
		Log:         logger.NewLogger(cfg.Log, "libctl"),
	}, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", libapi.Message(err))
		os.Exit(1)
	}
}
