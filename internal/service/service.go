// Package service implements the state-changing admin actions. Every
// mutation walks the same path: validate input, ask for confirmation, guard
// against a duplicate in-flight submission, call the gateway, then notify,
// audit, publish an event and refetch the affected collection.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tikang-admin/internal/audit"
	"tikang-admin/internal/events"
	"tikang-admin/internal/metrics"
	"tikang-admin/internal/notify"

	"github.com/rs/zerolog"
)

var (
	// ErrActionInFlight means the same action on the same target has not
	// resolved yet; the duplicate submission is rejected.
	ErrActionInFlight = errors.New("action already in progress")

	// ErrConfirmationDeclined means the operator answered no at the gate.
	ErrConfirmationDeclined = errors.New("action cancelled")
)

// ValidationError is a client-side rejection raised before any network call.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidationError reports whether err is a pre-submit rejection.
func IsValidationError(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// Confirmer gates destructive and financial actions. Answering false aborts
// with no network call.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// AutoConfirm answers yes to everything; used by --yes and by reads.
var AutoConfirm = ConfirmFunc(func(string) bool { return true })

// Core carries the cross-cutting pieces every mutation needs.
type Core struct {
	Confirm  Confirmer
	Notifier *notify.Notifier
	Bus      *events.EventBus
	Audit    *audit.Log // optional
	Logger   *zerolog.Logger
	Actor    func() string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewCore(confirm Confirmer, notifier *notify.Notifier, bus *events.EventBus, auditLog *audit.Log, logger *zerolog.Logger, actor func() string) *Core {
	if actor == nil {
		actor = func() string { return "" }
	}
	return &Core{
		Confirm:  confirm,
		Notifier: notifier,
		Bus:      bus,
		Audit:    auditLog,
		Logger:   logger,
		Actor:    actor,
		inFlight: make(map[string]struct{}),
	}
}

type mutation struct {
	action  string
	target  string
	id      int64
	prompt  string // empty skips the confirm gate
	success string
	event   string
	payload events.MutationPayload
}

// begin marks an (action, target) pair in flight; false means a duplicate.
func (c *Core) begin(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

func (c *Core) end(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, key)
}

func (c *Core) record(ctx context.Context, m mutation, outcome, message string) {
	metrics.IncMutation(m.action, outcome)
	if c.Audit == nil {
		return
	}
	err := c.Audit.Record(ctx, audit.Entry{
		Actor:    c.Actor(),
		Action:   m.action,
		Target:   m.target,
		TargetID: m.id,
		Outcome:  outcome,
		Message:  message,
	})
	if err != nil {
		c.Logger.Error().Err(err).Str("action", m.action).Msg("audit record failed")
	}
}

// run drives the mutation state machine around the gateway call.
func (c *Core) run(ctx context.Context, m mutation, call func(context.Context) error) error {
	key := fmt.Sprintf("%s:%d", m.action, m.id)
	if !c.begin(key) {
		c.record(ctx, m, audit.OutcomeDuplicate, "")
		return ErrActionInFlight
	}
	defer c.end(key)

	if m.prompt != "" && !c.Confirm.Confirm(m.prompt) {
		c.record(ctx, m, audit.OutcomeDeclined, "")
		return ErrConfirmationDeclined
	}

	if err := call(ctx); err != nil {
		c.Notifier.Error("%s", err.Error())
		c.record(ctx, m, audit.OutcomeFailure, err.Error())
		return err
	}

	c.Notifier.Success("%s", m.success)
	c.record(ctx, m, audit.OutcomeSuccess, "")

	m.payload.Action = m.action
	m.payload.Target = m.target
	m.payload.TargetID = m.id
	m.payload.Actor = c.Actor()
	if err := c.Bus.PublishJSON(m.event, m.payload); err != nil {
		c.Logger.Error().Err(err).Str("event", m.event).Msg("event publish failed")
	}
	return nil
}

// reject handles a validation failure: notify, audit, no network.
func (c *Core) reject(ctx context.Context, m mutation, message string) error {
	err := ValidationError(message)
	c.Notifier.Error("%s", message)
	c.record(ctx, m, audit.OutcomeBadInput, message)
	return err
}
