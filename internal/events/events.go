package events

import (
	"encoding/json"
	"sync"
	"time"
)

const (
	EventPaymentAccepted  = "payment_accepted"
	EventPaymentDeclined  = "payment_declined"
	EventPropertyVerified = "property_verified"
	EventPropertyDeleted  = "property_deleted"
	EventUserVerified     = "user_verified"
	EventUserBlocked      = "user_blocked"
	EventUserUnblocked    = "user_unblocked"
	EventUserDeleted      = "user_deleted"
	EventWalletAccepted   = "wallet_accepted"
	EventWalletCancelled  = "wallet_cancelled"
	EventAccountUpdated   = "account_updated"
)

// MutationPayload is the snapshot attached to every mutation event.
type MutationPayload struct {
	Action   string  `json:"action"`
	TargetID int64   `json:"target_id,omitempty"`
	Target   string  `json:"target,omitempty"`
	Actor    string  `json:"actor,omitempty"`
	Reason   string  `json:"reason,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	Detail   string  `json:"detail,omitempty"`
}

// Event represents a lightweight domain event.
type Event struct {
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// EventHandler reacts to an event.
type EventHandler func(event *Event) error

// EventBus provides in-process pub/sub for events.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// SubscribeAll registers a handler for every known mutation event type.
func (b *EventBus) SubscribeAll(handler EventHandler) {
	for _, eventType := range []string{
		EventPaymentAccepted, EventPaymentDeclined,
		EventPropertyVerified, EventPropertyDeleted,
		EventUserVerified, EventUserBlocked, EventUserUnblocked, EventUserDeleted,
		EventWalletAccepted, EventWalletCancelled,
		EventAccountUpdated,
	} {
		b.Subscribe(eventType, handler)
	}
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event *Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		// Handlers run synchronously; caller decides concurrency model.
		_ = handler(event)
	}
}

// PublishJSON serializes the payload and publishes an event.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	b.Publish(&Event{Type: eventType, Payload: raw, CreatedAt: time.Now()})
	return nil
}
