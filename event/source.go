package event

import (
	"context"
	"sync"
	"time"

	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/logging"
	"golang.org/x/sync/errgroup"
)

var log = logging.NewLogger("event")

// Source runs two producers: an input producer polling the key device with
// a timeout bounded by the time left until the next tick, and a ticker.
// Both send into one unbuffered channel, so events arrive in send order
// and none are dropped.
type Source struct {
	events chan Event
	done   chan struct{}
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

// NewSource starts the producers. They stop when ctx is cancelled, when
// Close is called, or when the poller fails.
func NewSource(ctx context.Context, poller KeyPoller, tickRate time.Duration) *Source {
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	s := &Source{
		events: make(chan Event),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	g.Go(func() error { return s.pollInput(gctx, poller, tickRate) })
	g.Go(func() error { return s.tick(gctx, tickRate) })

	go func() {
		err := g.Wait()
		if err == nil {
			err = context.Cause(ctx)
		}
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		log.WithError(err).Debug("Event source stopped")
		close(s.done)
	}()

	return s
}

func (s *Source) pollInput(ctx context.Context, poller KeyPoller, tickRate time.Duration) error {
	lastTick := time.Now()
	for {
		remaining := tickRate - time.Since(lastTick)
		if remaining < 0 {
			remaining = 0
		}

		key, ok, err := poller.Poll(ctx, remaining)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if ok {
			if err := s.send(ctx, Input(key)); err != nil {
				return err
			}
		}

		if time.Since(lastTick) >= tickRate {
			if err := s.send(ctx, Tick()); err != nil {
				return err
			}
			lastTick = time.Now()
		}
	}
}

func (s *Source) tick(ctx context.Context, tickRate time.Duration) error {
	timer := time.NewTimer(tickRate)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if err := s.send(ctx, Tick()); err != nil {
			return err
		}
		timer.Reset(tickRate)
	}
}

func (s *Source) send(ctx context.Context, ev Event) error {
	select {
	case s.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next blocks until the next event. Once the source has stopped it returns
// an EVENT_SOURCE_CLOSED error carrying the reason.
func (s *Source) Next(ctx context.Context) (Event, error) {
	select {
	case ev := <-s.events:
		return ev, nil
	case <-s.done:
		return Event{}, errors.EventSourceClosed(s.Err())
	case <-ctx.Done():
		return Event{}, errors.EventSourceClosed(ctx.Err())
	}
}

// Err returns why the source stopped, or nil while it is running.
func (s *Source) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed once both producers have exited.
func (s *Source) Done() <-chan struct{} {
	return s.done
}

// Close stops both producers and waits for them.
func (s *Source) Close() {
	s.cancel()
	<-s.done
}
