package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// HTTP configures the transport to GitHub. Retries of the transport are for
// network errors and 5xx/429 responses only; 404 is returned at once.
type HTTP struct {
	timeout      time.Duration
	retryMax     int64
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

func (x *HTTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of a single request to GitHub",
			Category:    "HTTP",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("OCTOFORK_HTTP_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "http-retry-max",
			Usage:       "Max retries of a request on network errors and server errors",
			Category:    "HTTP",
			Value:       2,
			Destination: &x.retryMax,
			Sources:     cli.EnvVars("OCTOFORK_HTTP_RETRY_MAX"),
		},
		&cli.DurationFlag{
			Name:        "http-retry-wait-min",
			Usage:       "Min wait between retries",
			Category:    "HTTP",
			Value:       500 * time.Millisecond,
			Destination: &x.retryWaitMin,
			Sources:     cli.EnvVars("OCTOFORK_HTTP_RETRY_WAIT_MIN"),
		},
		&cli.DurationFlag{
			Name:        "http-retry-wait-max",
			Usage:       "Max wait between retries",
			Category:    "HTTP",
			Value:       5 * time.Second,
			Destination: &x.retryWaitMax,
			Sources:     cli.EnvVars("OCTOFORK_HTTP_RETRY_WAIT_MAX"),
		},
	}
}

// NewClient builds the HTTP client used by the GitHub REST client.
func (x *HTTP) NewClient() *http.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = int(x.retryMax)
	client.RetryWaitMin = x.retryWaitMin
	client.RetryWaitMax = x.retryWaitMax
	client.HTTPClient.Timeout = x.timeout
	client.Logger = logging.Default()
	// Keep the last response after retries so that its status and body
	// reach the caller.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return client.StandardClient()
}

func (x HTTP) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("Timeout", x.timeout),
		slog.Int64("RetryMax", x.retryMax),
		slog.Duration("RetryWaitMin", x.retryWaitMin),
		slog.Duration("RetryWaitMax", x.retryWaitMax),
	)
}
