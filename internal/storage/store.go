// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/moneysplitter/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for group, ledger and quick split storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// The store only keeps snapshots. Balances and settlements are always
// recomputed from them and never persisted.
type Store interface {
	GroupStore
	LedgerStore
	QuickSplitStore

	// Close releases any resources held by the store.
	Close() error
}

// GroupStore persists groups and their members.
type GroupStore interface {
	// CreateGroup persists a new group.
	// group.ID, CreatedAt and any missing member IDs are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members in order.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups, newest first.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// UpdateGroup replaces the name and member list of an existing group.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group together with its ledgers.
	DeleteGroup(ctx context.Context, groupID string) error
}

// LedgerStore persists ledgers and their transactions.
type LedgerStore interface {
	// CreateLedger persists a new ledger with any initial transactions.
	// IDs and CreatedAt are populated by the store.
	CreateLedger(ctx context.Context, ledger *models.Ledger) error

	// GetLedger retrieves a ledger with all transactions in insertion order.
	GetLedger(ctx context.Context, ledgerID string) (*models.Ledger, error)

	// ListLedgersByGroup retrieves every ledger of a group, transactions included.
	ListLedgersByGroup(ctx context.Context, groupID string) ([]*models.Ledger, error)

	// AddTransaction appends a transaction to an existing ledger.
	AddTransaction(ctx context.Context, ledgerID string, tx *models.Transaction) error

	// DeleteLedger removes a ledger and its transactions.
	DeleteLedger(ctx context.Context, ledgerID string) error
}

// QuickSplitStore persists quick split forms.
type QuickSplitStore interface {
	// SaveQuickSplit inserts or replaces a quick split. An empty ID is assigned.
	SaveQuickSplit(ctx context.Context, split *models.QuickSplit) error

	// GetQuickSplit retrieves a saved quick split.
	GetQuickSplit(ctx context.Context, splitID string) (*models.QuickSplit, error)
}
