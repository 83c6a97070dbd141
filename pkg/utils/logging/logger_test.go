package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Run("configure with json format to stdout", func(t *testing.T) {
		err := logging.Configure(logging.Config{Format: "json", Level: "info", Output: "stdout"})
		gt.NoError(t, err)
	})

	t.Run("configure with text format", func(t *testing.T) {
		err := logging.Configure(logging.Config{Format: "text", Level: "debug", Output: "-"})
		gt.NoError(t, err)
	})

	t.Run("configure with file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "octofork.log")
		err := logging.Configure(logging.Config{Format: "json", Level: "info", Output: path})
		gt.NoError(t, err)

		logging.Default().Info("written to file")
		data, err := os.ReadFile(path)
		gt.NoError(t, err)
		gt.S(t, string(data)).Contains("written to file")

		gt.NoError(t, logging.Configure(logging.Config{Format: "text", Level: "info", Output: "stdout"}))
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure(logging.Config{Format: "invalid", Level: "info", Output: "stdout"})
		gt.Error(t, err)
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure(logging.Config{Format: "json", Level: "invalid", Output: "stdout"})
		gt.Error(t, err)
	})
}

func TestCredentialIsMasked(t *testing.T) {
	var buf bytes.Buffer
	handler, err := logging.NewHandler(logging.Config{Format: "json", Level: "debug"}, &buf)
	gt.NoError(t, err)

	logger := slog.New(handler)
	logger.Info("calling API",
		slog.Any("credential", types.Credential("token very-secret-value")),
		slog.Any("oauth", model.OAuthConfig{
			ClientID:     "abcxyz",
			ClientSecret: types.GitHubClientSecret("client-secret-value"),
		}),
	)

	gt.S(t, buf.String()).NotContains("very-secret-value")
	gt.S(t, buf.String()).NotContains("client-secret-value")
	gt.S(t, buf.String()).Contains("abcxyz")
}

func TestDefault(t *testing.T) {
	logger := logging.Default()
	logger.Info("test message", "key", "value")
}
