// Package notify delivers user-visible outcome notices without blocking the
// action that produced them. Notices go through a bounded queue; when the
// queue is full the oldest notice is dropped rather than stalling a handler.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"tikang-admin/internal/events"

	"github.com/rs/zerolog"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is one user-visible message.
type Notice struct {
	Level   Level
	Message string
	At      time.Time
}

// Sink receives notices. Delivery may fail; the notifier retries with
// backoff before giving up on a notice.
type Sink interface {
	Deliver(ctx context.Context, notice Notice) error
}

const defaultQueueSize = 64

// Notifier fans queued notices out to its sinks from a single worker
// goroutine.
type Notifier struct {
	sinks  []Sink
	retry  RetryPolicy
	logger *zerolog.Logger

	mu     sync.Mutex
	queue  chan Notice
	done   chan struct{}
	closed bool
	wg     sync.WaitGroup
}

func NewNotifier(logger *zerolog.Logger, retry RetryPolicy, sinks ...Sink) *Notifier {
	if retry.MaxRetries == 0 {
		retry.MaxRetries = 3
	}
	if retry.InitialDelay == 0 {
		retry.InitialDelay = 200 * time.Millisecond
	}
	n := &Notifier{
		sinks:  sinks,
		retry:  retry,
		logger: logger,
		queue:  make(chan Notice, defaultQueueSize),
		done:   make(chan struct{}),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// Notify enqueues without blocking; the oldest queued notice is discarded
// if the queue is full.
func (n *Notifier) Notify(level Level, format string, args ...any) {
	notice := Notice{Level: level, Message: fmt.Sprintf(format, args...), At: time.Now()}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	for {
		select {
		case n.queue <- notice:
			return
		default:
		}
		select {
		case dropped := <-n.queue:
			n.logger.Warn().Str("message", dropped.Message).Msg("notice queue full, dropping oldest")
		default:
		}
	}
}

func (n *Notifier) Success(format string, args ...any) { n.Notify(LevelSuccess, format, args...) }
func (n *Notifier) Error(format string, args ...any)   { n.Notify(LevelError, format, args...) }
func (n *Notifier) Info(format string, args ...any)    { n.Notify(LevelInfo, format, args...) }

func (n *Notifier) run() {
	defer n.wg.Done()
	for {
		select {
		case notice := <-n.queue:
			n.deliver(notice)
		case <-n.done:
			// Drain what is already queued before exiting.
			for {
				select {
				case notice := <-n.queue:
					n.deliver(notice)
				default:
					return
				}
			}
		}
	}
}

func (n *Notifier) deliver(notice Notice) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, sink := range n.sinks {
		var err error
		for attempt := 1; attempt <= n.retry.MaxRetries; attempt++ {
			if err = sink.Deliver(ctx, notice); err == nil {
				break
			}
			select {
			case <-time.After(n.retry.NextDelay(attempt)):
			case <-ctx.Done():
				err = ctx.Err()
			}
			if ctx.Err() != nil {
				break
			}
		}
		if err != nil {
			n.logger.Error().Err(err).Str("message", notice.Message).Msg("notice delivery failed")
		}
	}
}

// Close stops the worker after draining queued notices.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

// WriterSink prints notices to a writer, one line each. The CLI points it
// at stderr.
type WriterSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

func (s *WriterSink) Deliver(ctx context.Context, notice Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.out, "[%s] %s\n", notice.Level, notice.Message)
	return err
}

// ForwardEvents bridges mutation events onto the notifier, so sinks like
// Telegram see every state change, not just the ones typed at this
// terminal's prompt.
func ForwardEvents(bus *events.EventBus, notifier *Notifier) {
	bus.SubscribeAll(func(event *events.Event) error {
		var payload events.MutationPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		detail := payload.Detail
		if detail == "" && payload.TargetID != 0 {
			detail = fmt.Sprintf("%s %d", payload.Target, payload.TargetID)
		}
		notifier.Info("%s: %s", event.Type, detail)
		return nil
	})
}
