package notifier

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// Sink delivers alert text somewhere.
type Sink interface {
	Send(ctx context.Context, text string) error
	Name() string
}

// ConsoleSink writes each message to an io.Writer, one blank line apart.
type ConsoleSink struct {
	mu  sync.Mutex
	Out io.Writer
}

// NewConsoleSink creates a ConsoleSink writing to out.
func NewConsoleSink(out io.Writer) *ConsoleSink { return &ConsoleSink{Out: out} }

func (c *ConsoleSink) Name() string { return "console" }

func (c *ConsoleSink) Send(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.Out, "%s\n\n", text)
	return err
}

// retryInterval is the first backoff delay of SendWithRetry.
var retryInterval = time.Second

// SendWithRetry sends text through sink, retrying with exponential backoff.
func SendWithRetry(ctx context.Context, sink Sink, text string, maxRetries int) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxRetries)), ctx)

	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		return sink.Send(ctx, text)
	}, policy, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("sink", sink.Name()).Int("attempt", attempt).
			Dur("retry_in", wait).Msg("send failed, retrying")
	})
	if err != nil {
		return fmt.Errorf("%s: all %d attempts failed: %w", sink.Name(), attempt, err)
	}
	return nil
}
