package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/interface/cli"
)

func main() {
	_ = godotenv.Load() // load .env if present

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp()
	if err := cli.NewRootCmd(app).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrAttemptFailed) {
			_, _ = fmt.Fprintln(app.Err, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
