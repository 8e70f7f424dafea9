package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/slidesmith/slidesmith/pkg/limiter"
	"github.com/slidesmith/slidesmith/pkg/provider"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type stubCompleter struct {
	calls int
}

func (s *stubCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	s.calls++

	return &provider.Completion{
		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				provider.TextContent("ok"),
			},
		},
	}, nil
}

func TestCompleteDelegates(t *testing.T) {
	stub := &stubCompleter{}
	completer := limiter.NewCompleter(rate.NewLimiter(rate.Inf, 0), stub)

	completion, err := completer.Complete(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, "ok", completion.Message.Text())
	require.Equal(t, 1, stub.calls)
}

func TestCompleteGates(t *testing.T) {
	stub := &stubCompleter{}
	completer := limiter.NewCompleter(rate.NewLimiter(rate.Limit(1), 1), stub)

	_, err := completer.Complete(context.Background(), nil, nil)
	require.NoError(t, err)

	// the burst is spent and the next token is a second away, beyond the
	// deadline, so the wait fails without reaching the inner completer
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = completer.Complete(ctx, nil, nil)
	require.Error(t, err)
	require.Equal(t, 1, stub.calls)
}

func TestCompleteCancelled(t *testing.T) {
	stub := &stubCompleter{}
	completer := limiter.NewCompleter(rate.NewLimiter(rate.Limit(1), 1), stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := completer.Complete(ctx, nil, nil)
	require.Error(t, err)
	require.Zero(t, stub.calls)
}
