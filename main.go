package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/km-arc/go-beanfactory/app"
	frameworkapp "github.com/km-arc/go-beanfactory/framework/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := frameworkapp.New() // loads .env automatically
	if err != nil {
		return err
	}
	defer func() { _ = application.Logger.Sync() }()

	if err := application.Register(&app.Provider{}); err != nil {
		return err
	}
	if err := application.Boot(ctx); err != nil {
		return err
	}

	application.Logger.Info("beans ready", zap.Strings("keys", application.Factory.Keys(ctx)))
	return application.Run(ctx)
}
