package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/blimp/internal/config"
	"github.com/tomz197/blimp/internal/logging"
	"github.com/tomz197/blimp/internal/loop"
)

func main() {
	logger, err := logging.New(logging.Options{
		File:  config.GetEnv("BLIMP_LOG_FILE", ""),
		Level: config.GetEnv("BLIMP_LOG_LEVEL", "info"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Logger:   logger,
		Seed:     config.GetEnvInt64("BLIMP_SEED", 0),
		TickRate: config.GetEnvInt("BLIMP_TICK_RATE", 0),
	})
	if err != nil {
		logger.Error("game error", zap.Error(err))
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
