package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/infrastructure/cli"
	"github.com/doeshing/shaid/internal/infrastructure/config"
	"github.com/doeshing/shaid/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if path, err := config.NewFileLoader("").Path(); err == nil {
		if err := config.LoadDotEnv(path); err != nil {
			fmt.Fprintln(os.Stderr, "warning: .env ignored:", err)
		}
	}

	code := cli.Execute(ctx, os.Args[1:], cli.Options{
		Verbose: logger.VerboseFromProcessEnv(domain.EnvDebug),
	})
	stop()
	os.Exit(code)
}
