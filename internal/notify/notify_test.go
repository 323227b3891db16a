package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"tikang-admin/internal/events"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	notices []Notice
	failN   int
	calls   int
}

func (s *recordingSink) Deliver(ctx context.Context, notice Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failN {
		return errors.New("sink unavailable")
	}
	s.notices = append(s.notices, notice)
	return nil
}

func (s *recordingSink) delivered() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notice(nil), s.notices...)
}

func TestNotifierDeliversInOrder(t *testing.T) {
	logger := zerolog.Nop()
	sink := &recordingSink{}
	notifier := NewNotifier(&logger, RetryPolicy{MaxRetries: 1, InitialDelay: time.Millisecond}, sink)

	notifier.Success("payment accepted for booking %d", 42)
	notifier.Error("decline failed: %s", "reason required")
	notifier.Close()

	notices := sink.delivered()
	require.Len(t, notices, 2)
	assert.Equal(t, LevelSuccess, notices[0].Level)
	assert.Equal(t, "payment accepted for booking 42", notices[0].Message)
	assert.Equal(t, LevelError, notices[1].Level)
}

func TestNotifierRetriesFailedDelivery(t *testing.T) {
	logger := zerolog.Nop()
	sink := &recordingSink{failN: 2}
	notifier := NewNotifier(&logger, RetryPolicy{MaxRetries: 3, InitialDelay: time.Millisecond}, sink)

	notifier.Info("hello")
	notifier.Close()

	require.Len(t, sink.delivered(), 1)
	assert.Equal(t, 3, sink.calls)
}

func TestNotifyNeverBlocks(t *testing.T) {
	logger := zerolog.Nop()
	// A full queue drops the oldest notice instead of back-pressuring.
	notifier := NewNotifier(&logger, RetryPolicy{MaxRetries: 1, InitialDelay: time.Millisecond})

	done := make(chan struct{})
	go func() {
		for i := 0; i < defaultQueueSize*4; i++ {
			notifier.Info("notice %d", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Notify blocked on a full queue")
	}
	notifier.Close()
}

func TestNotifyAfterCloseIsNoop(t *testing.T) {
	logger := zerolog.Nop()
	sink := &recordingSink{}
	notifier := NewNotifier(&logger, RetryPolicy{MaxRetries: 1, InitialDelay: time.Millisecond}, sink)
	notifier.Close()

	assert.NotPanics(t, func() { notifier.Info("late") })
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	require.NoError(t, sink.Deliver(context.Background(), Notice{Level: LevelSuccess, Message: "done"}))
	assert.Equal(t, "[success] done\n", buf.String())
}

func TestForwardEvents(t *testing.T) {
	logger := zerolog.Nop()
	sink := &recordingSink{}
	notifier := NewNotifier(&logger, RetryPolicy{MaxRetries: 1, InitialDelay: time.Millisecond}, sink)
	bus := events.NewEventBus()
	ForwardEvents(bus, notifier)

	require.NoError(t, bus.PublishJSON(events.EventUserBlocked, events.MutationPayload{
		Action: "block_user", Target: "user", TargetID: 7,
	}))
	notifier.Close()

	notices := sink.delivered()
	require.Len(t, notices, 1)
	assert.True(t, strings.Contains(notices[0].Message, events.EventUserBlocked))
	assert.True(t, strings.Contains(notices[0].Message, "user 7"))
}

func TestRetryPolicyBackoff(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 5, InitialDelay: time.Second, MaxDelay: 5 * time.Second, BackoffFactor: 2}

	assert.Equal(t, time.Second, policy.NextDelay(1))
	assert.Equal(t, 2*time.Second, policy.NextDelay(2))
	assert.Equal(t, 4*time.Second, policy.NextDelay(3))
	assert.Equal(t, 5*time.Second, policy.NextDelay(4), "clamped to max delay")
	assert.Equal(t, time.Second, policy.NextDelay(0), "attempt floor")
}
