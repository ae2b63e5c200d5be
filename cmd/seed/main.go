package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/config"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/application"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/infrastructure/sessionapi"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/interface/presenter"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/helpers"
)

// Registers the demo account against API_BASE_URL and prints its token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	client := sessionapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)
	flow := application.NewAuthWorkflow(client, logger)

	res := flow.Register(context.Background(), entity.Credentials{Email: cfg.SeedEmail, Password: cfg.SeedPassword})
	if presenter.Present(presenter.LogNotifier{Logger: logger}, res) {
		os.Exit(1)
	}
	fmt.Printf("seeded user: email=%s token=%s\n", cfg.SeedEmail, res.Session.Token)
}
