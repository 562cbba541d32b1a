package streams

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxDemand    = 16
	defaultPollInterval = 50 * time.Millisecond
)

// RecvFunc returns the next inbound item. io.EOF signals a clean
// end-of-stream; any other error is a stream failure.
type RecvFunc[C any] func(ctx context.Context) (C, error)

// PullFunc returns up to max pending producer events. An empty result means
// nothing is available right now; the joiner waits its poll interval before
// pulling again.
type PullFunc[P any] func(ctx context.Context, max int) ([]P, error)

// Config tunes a join.
type Config struct {
	// MaxDemand bounds the in-flight items buffered towards the consumer.
	// When the consumer stops draining, both the inbound pump and the
	// producer pump block, regardless of which side the next item comes
	// from. Defaults to 16.
	MaxDemand int

	// PollInterval is the bounded wait between empty producer pulls.
	// Defaults to 50ms.
	PollInterval time.Duration

	// Clock drives the poll timer; nil uses the wall clock.
	Clock clock.Clock
}

func (c Config) withDefaults() Config {
	if c.MaxDemand <= 0 {
		c.MaxDemand = defaultMaxDemand
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return c
}

// Joiner merges a caller-driven inbound stream with a pull-driven producer
// into a single event sequence. Inbound items are forwarded in arrival
// order; producer events interleave as soon as they are available. The two
// sources are pumped by independent goroutines, so neither can head-of-line
// block the other.
//
// The joined sequence ends when the inbound stream reports io.EOF (or
// fails, or ctx is cancelled). Producer events that surface after that
// point are dropped: the merge is over and nothing is delivered after the
// events channel closes.
type Joiner[C, P any] struct {
	out chan Event[C, P]

	mu  sync.Mutex
	err error
}

// Join starts pumping both sources immediately and returns the running
// joiner. Consume Events until it closes, then check Err for the reason if
// the join did not end with a clean inbound end-of-stream.
func Join[C, P any](ctx context.Context, recv RecvFunc[C], pull PullFunc[P], cfg Config) *Joiner[C, P] {
	cfg = cfg.withDefaults()

	j := &Joiner[C, P]{
		out: make(chan Event[C, P], cfg.MaxDemand),
	}

	joinCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(joinCtx)

	g.Go(func() error {
		// Inbound end-of-stream ends the whole join: without an open
		// outbound channel no further delivery is possible.
		defer cancel()
		return j.pumpInbound(gctx, recv)
	})
	g.Go(func() error {
		return j.pumpProducer(gctx, pull, cfg)
	})

	go func() {
		defer cancel()
		if err := g.Wait(); err != nil {
			j.setErr(err)
		}
		close(j.out)
	}()

	return j
}

// Events returns the merged sequence. It closes when the inbound stream
// ends, fails, or the context is cancelled.
func (j *Joiner[C, P]) Events() <-chan Event[C, P] {
	return j.out
}

// Err reports why the join ended. It is nil for a clean inbound
// end-of-stream and valid once Events has closed.
func (j *Joiner[C, P]) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

func (j *Joiner[C, P]) pumpInbound(ctx context.Context, recv RecvFunc[C]) error {
	for {
		item, err := recv(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		select {
		case j.out <- clientEvent[C, P](item):
		case <-ctx.Done():
			return nil
		}
	}
}

func (j *Joiner[C, P]) pumpProducer(ctx context.Context, pull PullFunc[P], cfg Config) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		events, err := pull(ctx, cfg.MaxDemand)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		for _, item := range events {
			if ctx.Err() != nil {
				// The join is over; late producer events are dropped.
				return nil
			}
			select {
			case j.out <- producerEvent[C, P](item):
			case <-ctx.Done():
				return nil
			}
		}

		if len(events) == 0 {
			timer := cfg.Clock.Timer(cfg.PollInterval)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil
			}
		}
	}
}

func (j *Joiner[C, P]) setErr(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err == nil {
		j.err = err
	}
}
