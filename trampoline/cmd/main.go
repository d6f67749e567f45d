package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-leo/tailcall/demo"
)

var (
	n         int64
	recursive bool
	maxStack  int
	logLevel  string
)

func init() {
	flag.Int64Var(&n, "n", demo.DefaultN, "Factorial argument")
	flag.BoolVar(&recursive, "recursive", true, "Also run the stack-bound variants in a child process")
	flag.IntVar(&maxStack, "max-stack", demo.DefaultMaxStack, "Stack limit in bytes for the child process")
	flag.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
}

func main() {
	demo.ServeChild()

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevelFromString(logLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := demo.Run(ctx, os.Stdout, demo.Config{
		N:         n,
		Recursive: recursive,
		MaxStack:  maxStack,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("demo failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
