package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/tzclock/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// floodPoller always has a key ready.
type floodPoller struct{}

func (floodPoller) Poll(ctx context.Context, _ time.Duration) (tea.KeyMsg, bool, error) {
	if err := ctx.Err(); err != nil {
		return tea.KeyMsg{}, false, err
	}
	return runeKey('x'), true, nil
}

// chanPoller delivers keys from a channel and times out like a real device.
type chanPoller struct {
	keys chan tea.KeyMsg
	fail chan error
}

func newChanPoller() *chanPoller {
	return &chanPoller{keys: make(chan tea.KeyMsg, 16), fail: make(chan error, 1)}
}

func (p *chanPoller) Poll(ctx context.Context, timeout time.Duration) (tea.KeyMsg, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return tea.KeyMsg{}, false, ctx.Err()
	case err := <-p.fail:
		return tea.KeyMsg{}, false, err
	case k := <-p.keys:
		return k, true, nil
	case <-timer.C:
		return tea.KeyMsg{}, false, nil
	}
}

func TestTickLivenessUnderConstantInput(t *testing.T) {
	const tickRate = 20 * time.Millisecond
	src := NewSource(context.Background(), floodPoller{}, tickRate)
	defer src.Close()

	ctx := context.Background()
	deadline := time.Now().Add(15 * tickRate)
	lastTick := time.Now()
	ticks, inputs := 0, 0
	maxGap := time.Duration(0)

	for time.Now().Before(deadline) {
		ev, err := src.Next(ctx)
		require.NoError(t, err)
		switch ev.Kind {
		case KindTick:
			if gap := time.Since(lastTick); gap > maxGap {
				maxGap = gap
			}
			lastTick = time.Now()
			ticks++
		case KindInput:
			inputs++
		}
	}

	assert.Greater(t, inputs, ticks, "keys should dominate the stream")
	assert.GreaterOrEqual(t, ticks, 7)
	assert.Less(t, maxGap, 3*tickRate, "a tick must arrive every interval even when keys never pause")
}

func TestTicksWhileIdle(t *testing.T) {
	const tickRate = 10 * time.Millisecond
	src := NewSource(context.Background(), newChanPoller(), tickRate)
	defer src.Close()

	for i := 0; i < 5; i++ {
		ev, err := src.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, KindTick, ev.Kind)
	}
}

func TestKeysArriveInOrder(t *testing.T) {
	poller := newChanPoller()
	src := NewSource(context.Background(), poller, 5*time.Millisecond)
	defer src.Close()

	for _, r := range "abc" {
		poller.keys <- runeKey(r)
	}

	var got []rune
	for len(got) < 3 {
		ev, err := src.Next(context.Background())
		require.NoError(t, err)
		if ev.Kind == KindInput {
			got = append(got, ev.Key.Runes...)
		}
	}
	assert.Equal(t, []rune("abc"), got)
}

func TestPollerFailureClosesSource(t *testing.T) {
	poller := newChanPoller()
	src := NewSource(context.Background(), poller, time.Hour)
	poller.fail <- fmt.Errorf("tty gone")

	select {
	case <-src.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("source did not stop after the poller failed")
	}

	_, err := src.Next(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeEventSourceClosed, errors.GetCode(err))
	assert.Contains(t, err.Error(), "tty gone")
}

func TestCloseStopsProducers(t *testing.T) {
	src := NewSource(context.Background(), floodPoller{}, time.Millisecond)

	done := make(chan struct{})
	go func() {
		src.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked with producers waiting to send")
	}

	_, err := src.Next(context.Background())
	assert.True(t, errors.Is(err, errors.ErrCodeEventSourceClosed))
	assert.ErrorIs(t, src.Err(), context.Canceled)
}

func TestParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := NewSource(ctx, newChanPoller(), time.Hour)
	cancel()

	<-src.Done()
	_, err := src.Next(context.Background())
	assert.True(t, errors.Is(err, errors.ErrCodeEventSourceClosed))
}
