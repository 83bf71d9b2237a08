// Package events defines the notifications emitted when a ledger is settled.
package events

import (
	"context"
	"time"
)

// TypeLedgerSettled is the event type carried in message headers.
const TypeLedgerSettled = "ledger.settled"

// Payment is one transfer in a published settlement.
type Payment struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// LedgerSettled is published after a stored ledger has been settled.
type LedgerSettled struct {
	LedgerID  string    `json:"ledger_id"`
	GroupID   string    `json:"group_id"`
	Payments  []Payment `json:"payments"`
	Unsettled int       `json:"unsettled"`
	SettledAt time.Time `json:"settled_at"`
}

// Publisher delivers settlement events to downstream consumers.
type Publisher interface {
	PublishLedgerSettled(ctx context.Context, event LedgerSettled) error
	Close() error
}

// NoopPublisher discards every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishLedgerSettled(context.Context, LedgerSettled) error { return nil }

func (NoopPublisher) Close() error { return nil }
