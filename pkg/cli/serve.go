package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octofork/pkg/cli/config"
	"github.com/m-mizutani/octofork/pkg/controller/server"
	"github.com/m-mizutani/octofork/pkg/usecase"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const defaultShutdownTimeout = 30 * time.Second

// listenUntilSignal serves until SIGINT or SIGTERM arrives and then drains
// in-flight requests for at most shutdownTimeout.
func listenUntilSignal(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		logging.From(ctx).Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			listenErr <- goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", srv.Addr))
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		return err

	case <-ctx.Done():
		logging.From(ctx).Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server")
		}
		return nil
	}
}

func serveCommand() *cli.Command {
	var (
		addr              string
		backgroundTimeout time.Duration
		shutdownTimeout   time.Duration

		github  config.GitHub
		fork    config.Fork
		httpCfg config.HTTP
		sentry  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("OCTOFORK_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "background-timeout",
			Usage:       "Deadline of fork requests completed in background (wait=false)",
			Value:       server.DefaultBackgroundTimeout,
			Sources:     cli.EnvVars("OCTOFORK_BACKGROUND_TIMEOUT"),
			Destination: &backgroundTimeout,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Time to drain in-flight requests on SIGINT or SIGTERM",
			Value:       defaultShutdownTimeout,
			Sources:     cli.EnvVars("OCTOFORK_SHUTDOWN_TIMEOUT"),
			Destination: &shutdownTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the OAuth and GitHub proxy endpoints over HTTP",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			github.OAuthFlags(),
			fork.Flags(),
			httpCfg.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting octofork server",
				slog.String("addr", addr),
				slog.Any("github", &github),
				slog.Any("fork", &fork),
				slog.Any("http", &httpCfg),
				slog.Any("sentry", &sentry),
			)

			flushSentry, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flushSentry()

			clients, err := newClients(&github, &httpCfg)
			if err != nil {
				return err
			}

			uc := usecase.New(clients, append([]usecase.Option{
				usecase.WithOAuthConfig(github.OAuthConfig()),
				usecase.WithWebURL(github.WebURL()),
			}, fork.Options()...)...)

			httpServer := &http.Server{
				Addr:    addr,
				Handler: server.New(uc, server.WithBackgroundTimeout(backgroundTimeout)).Mux(),

				// No WriteTimeout: fork requests wait for GitHub and
				// repository listings are streamed.
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
			}

			return listenUntilSignal(ctx, httpServer, shutdownTimeout)
		},
	}
}
