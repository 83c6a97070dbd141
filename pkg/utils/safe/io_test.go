package safe_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octofork/pkg/utils/safe"
)

type body struct {
	io.Reader
	closed   bool
	closeErr error
}

func (x *body) Close() error {
	x.closed = true
	return x.closeErr
}

func TestCloseBody(t *testing.T) {
	ctx := context.Background()

	t.Run("drains and closes", func(t *testing.T) {
		b := &body{Reader: strings.NewReader(`[{"full_name":"jdoe/foo"}]`)}
		safe.CloseBody(ctx, b)

		gt.True(t, b.closed)
		rest, err := io.ReadAll(b.Reader)
		gt.NoError(t, err)
		gt.V(t, len(rest)).Equal(0)
	})

	t.Run("large leftovers are not read to the end", func(t *testing.T) {
		b := &body{Reader: strings.NewReader(strings.Repeat("x", 128<<10))}
		safe.CloseBody(ctx, b)

		gt.True(t, b.closed)
		rest, err := io.ReadAll(b.Reader)
		gt.NoError(t, err)
		gt.V(t, len(rest)).Equal(64 << 10)
	})

	t.Run("close error is only logged", func(t *testing.T) {
		b := &body{Reader: strings.NewReader(""), closeErr: errors.New("broken pipe")}
		safe.CloseBody(ctx, b)
		gt.True(t, b.closed)
	})

	t.Run("nil body", func(t *testing.T) {
		safe.CloseBody(ctx, nil)
	})
}
