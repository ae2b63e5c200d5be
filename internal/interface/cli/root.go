// Package cli is the command-line caller of the authentication workflow.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/config"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/application"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/infrastructure/sessionapi"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/interface/presenter"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/helpers"
)

// PasswordEnv is read when --password is not given.
const PasswordEnv = "TVSHOWS_PASSWORD"

// ErrAttemptFailed is returned after the failure has already been shown to
// the user; callers only need to set the exit code.
var ErrAttemptFailed = errors.New("authentication attempt failed")

// App holds the streams and environment the commands run against.
type App struct {
	Out    io.Writer
	Err    io.Writer
	Getenv func(string) string
}

// NewApp returns an App bound to the process streams.
func NewApp() *App {
	return &App{Out: os.Stdout, Err: os.Stderr, Getenv: os.Getenv}
}

type globalFlags struct {
	apiURL  string
	timeout time.Duration
	verbose bool
}

// NewRootCmd builds the tvshows command tree.
func NewRootCmd(app *App) *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:   "tvshows",
		Short: "Log in to or register with the TV Shows API",
		Long: `tvshows signs in to the TV Shows API and prints the session token.

Example usage:
  tvshows login --email viewer@example.com --password secret
  TVSHOWS_PASSWORD=secret tvshows register -e viewer@example.com
  tvshows login -e viewer@example.com --api http://localhost:8080 -v`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.Out)
	root.SetErr(app.Err)
	root.PersistentFlags().StringVar(&g.apiURL, "api", "", "session API base URL (default $API_BASE_URL)")
	root.PersistentFlags().DurationVar(&g.timeout, "timeout", 0, "per-request timeout (default $API_TIMEOUT)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "show workflow steps and debug logs")

	root.AddCommand(
		newAuthCmd(app, &g, "login", "Open a session for an existing account", (*application.AuthWorkflow).Login),
		newAuthCmd(app, &g, "register", "Create an account and open a session", (*application.AuthWorkflow).Register),
	)
	return root
}

type flowFunc func(*application.AuthWorkflow, context.Context, entity.Credentials) application.Result

func newAuthCmd(app *App, g *globalFlags, use, short string, flow flowFunc) *cobra.Command {
	var creds entity.Credentials
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("password") {
				creds.Password = app.Getenv(PasswordEnv)
			}
			w := app.workflow(g)
			res := flow(w, cmd.Context(), creds)
			return app.render(res)
		},
	}
	cmd.Flags().StringVarP(&creds.Email, "email", "e", "", "account e-mail")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "account password (or $"+PasswordEnv+")")
	return cmd
}

func (a *App) workflow(g *globalFlags) *application.AuthWorkflow {
	cfg := config.Load()
	if g.apiURL != "" {
		cfg.APIBaseURL = g.apiURL
	}
	if g.timeout > 0 {
		cfg.APITimeout = g.timeout
	}

	logger := helpers.NewLoggerTo(a.Err, cfg.AppName, "development")
	logger.SetLevel(logrus.ErrorLevel)
	if g.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	w := application.NewAuthWorkflow(sessionapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger), logger)
	if g.verbose {
		w.Observer = func(s application.State) {
			_, _ = fmt.Fprintf(a.Err, "-> %s\n", s)
		}
	}
	return w
}

func (a *App) render(res application.Result) error {
	if presenter.Present(presenter.WriterNotifier{W: a.Err}, res) {
		return ErrAttemptFailed
	}
	_, err := fmt.Fprintln(a.Out, res.Session.Token)
	return err
}
