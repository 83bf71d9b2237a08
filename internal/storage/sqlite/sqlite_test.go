package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/moneysplitter/internal/models"
	"github.com/mmynk/moneysplitter/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "moneysplitter-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup generates IDs", func(t *testing.T) {
		group := &models.Group{
			Name:    "Flatmates",
			Members: []models.Person{{Name: "Alice"}, {Name: "Bob"}},
		}
		require.NoError(t, store.CreateGroup(ctx, group))

		assert.NotEmpty(t, group.ID)
		assert.NotZero(t, group.CreatedAt)
		for _, m := range group.Members {
			assert.NotEmpty(t, m.ID)
		}
	})

	t.Run("GetGroup preserves member order", func(t *testing.T) {
		original := &models.Group{
			Name: "Trip",
			Members: []models.Person{
				{ID: "c", Name: "Charlie"},
				{ID: "a", Name: "Alice"},
				{ID: "b", Name: "Bob"},
			},
		}
		require.NoError(t, store.CreateGroup(ctx, original))

		got, err := store.GetGroup(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, original.Name, got.Name)
		assert.Equal(t, original.Members, got.Members)
	})

	t.Run("GetGroup unknown ID", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateGroup replaces members", func(t *testing.T) {
		group := &models.Group{Name: "Before", Members: []models.Person{{ID: "x", Name: "X"}}}
		require.NoError(t, store.CreateGroup(ctx, group))

		group.Name = "After"
		group.Members = []models.Person{{ID: "y", Name: "Y"}, {ID: "z", Name: "Z"}}
		require.NoError(t, store.UpdateGroup(ctx, group))

		got, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", got.Name)
		assert.Equal(t, group.Members, got.Members)
	})

	t.Run("UpdateGroup unknown ID", func(t *testing.T) {
		err := store.UpdateGroup(ctx, &models.Group{ID: "missing", Name: "Nope"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListGroups and DeleteGroup", func(t *testing.T) {
		groups, err := store.ListGroups(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 3)
		for _, g := range groups {
			assert.NotEmpty(t, g.Members)
		}

		require.NoError(t, store.DeleteGroup(ctx, groups[0].ID))
		_, err = store.GetGroup(ctx, groups[0].ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		err = store.DeleteGroup(ctx, groups[0].ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestSQLiteStore_Ledgers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := models.Person{ID: "alice", Name: "Alice"}
	bob := models.Person{ID: "bob", Name: "Bob"}
	carol := models.Person{ID: "carol", Name: "Carol"}

	group := &models.Group{Name: "Weekend", Members: []models.Person{alice, bob, carol}}
	require.NoError(t, store.CreateGroup(ctx, group))

	ledger := &models.Ledger{
		Name:    "Cabin",
		GroupID: group.ID,
		Transactions: []models.Transaction{
			{
				Description:   "Groceries",
				Payers:        []models.Payer{{Person: alice, Amount: 90}},
				Beneficiaries: []models.Person{alice, bob, carol},
			},
			{
				Description:   "Fuel",
				Payers:        []models.Payer{{Person: bob, Amount: 30}, {Person: carol, Amount: 10}},
				Beneficiaries: []models.Person{bob, carol},
			},
		},
	}

	t.Run("CreateLedger and GetLedger round trip", func(t *testing.T) {
		require.NoError(t, store.CreateLedger(ctx, ledger))
		assert.NotEmpty(t, ledger.ID)
		for _, tx := range ledger.Transactions {
			assert.NotEmpty(t, tx.ID)
		}

		got, err := store.GetLedger(ctx, ledger.ID)
		require.NoError(t, err)
		assert.Equal(t, ledger.Name, got.Name)
		assert.Equal(t, group.ID, got.GroupID)
		assert.Equal(t, ledger.Transactions, got.Transactions)
	})

	t.Run("CreateLedger unknown group", func(t *testing.T) {
		err := store.CreateLedger(ctx, &models.Ledger{Name: "Orphan", GroupID: "missing"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("AddTransaction appends", func(t *testing.T) {
		tx := &models.Transaction{
			Description:   "Zero beneficiaries",
			Payers:        []models.Payer{{Person: carol, Amount: 12.5}},
			Beneficiaries: nil,
		}
		require.NoError(t, store.AddTransaction(ctx, ledger.ID, tx))

		got, err := store.GetLedger(ctx, ledger.ID)
		require.NoError(t, err)
		require.Len(t, got.Transactions, 3)
		last := got.Transactions[2]
		assert.Equal(t, tx.ID, last.ID)
		assert.Equal(t, "Zero beneficiaries", last.Description)
		assert.Equal(t, tx.Payers, last.Payers)
		assert.Empty(t, last.Beneficiaries)
	})

	t.Run("AddTransaction unknown ledger", func(t *testing.T) {
		err := store.AddTransaction(ctx, "missing", &models.Transaction{Description: "x"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListLedgersByGroup", func(t *testing.T) {
		ledgers, err := store.ListLedgersByGroup(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, ledgers, 1)
		assert.Len(t, ledgers[0].Transactions, 3)

		none, err := store.ListLedgersByGroup(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("CreateLedger copied transactions get new IDs", func(t *testing.T) {
		copied := &models.Ledger{Name: "Cabin copy", GroupID: group.ID}
		copied.Transactions = append(copied.Transactions, ledger.Transactions...)
		require.NoError(t, store.CreateLedger(ctx, copied))

		require.Len(t, copied.Transactions, len(ledger.Transactions))
		for i := range copied.Transactions {
			assert.NotEqual(t, ledger.Transactions[i].ID, copied.Transactions[i].ID)
		}

		got, err := store.GetLedger(ctx, copied.ID)
		require.NoError(t, err)
		assert.Equal(t, copied.Transactions, got.Transactions)
	})

	t.Run("DeleteGroup cascades to ledgers", func(t *testing.T) {
		require.NoError(t, store.DeleteGroup(ctx, group.ID))
		_, err := store.GetLedger(ctx, ledger.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.DeleteLedger(ctx, ledger.ID), storage.ErrNotFound)
	})
}

func TestSQLiteStore_QuickSplits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	split := &models.QuickSplit{
		TotalAmount:     60,
		TotalNoOfPeople: 2,
		Mode:            models.ModeAdvanced,
		People: []models.SplitEntry{
			{ID: 0, Name: "Alice", Paid: 60, Cost: 25, Locked: true},
			{ID: 1, Name: "Bob", Paid: 0, Cost: 35},
		},
	}

	t.Run("SaveQuickSplit and GetQuickSplit", func(t *testing.T) {
		require.NoError(t, store.SaveQuickSplit(ctx, split))
		assert.NotEmpty(t, split.ID)
		assert.NotZero(t, split.UpdatedAt)

		got, err := store.GetQuickSplit(ctx, split.ID)
		require.NoError(t, err)
		assert.Equal(t, split, got)
	})

	t.Run("SaveQuickSplit replaces", func(t *testing.T) {
		split.TotalNoOfPeople = 1
		split.Mode = models.ModeSimple
		split.People = split.People[:1]
		require.NoError(t, store.SaveQuickSplit(ctx, split))

		got, err := store.GetQuickSplit(ctx, split.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ModeSimple, got.Mode)
		assert.Len(t, got.People, 1)
	})

	t.Run("GetQuickSplit unknown ID", func(t *testing.T) {
		_, err := store.GetQuickSplit(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
