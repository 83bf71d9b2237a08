package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/moneysplitter/internal/models"
	"github.com/mmynk/moneysplitter/internal/storage"
)

// CreateLedger persists a new ledger and its initial transactions.
func (s *SQLiteStore) CreateLedger(ctx context.Context, ledger *models.Ledger) error {
	if ledger.ID == "" {
		ledger.ID = uuid.New().String()
	}
	if ledger.CreatedAt == 0 {
		ledger.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireRow(ctx, tx, "SELECT 1 FROM groups WHERE id = ?", ledger.GroupID); err != nil {
		return fmt.Errorf("group %s: %w", ledger.GroupID, err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO ledgers (id, group_id, name, created_at) VALUES (?, ?, ?, ?)",
		ledger.ID, ledger.GroupID, ledger.Name, ledger.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger: %w", err)
	}

	for i := range ledger.Transactions {
		if err := insertTransaction(ctx, tx, ledger.ID, i, &ledger.Transactions[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetLedger retrieves a ledger by ID, including all transactions.
func (s *SQLiteStore) GetLedger(ctx context.Context, ledgerID string) (*models.Ledger, error) {
	ledger := &models.Ledger{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, group_id, name, created_at FROM ledgers WHERE id = ?",
		ledgerID,
	).Scan(&ledger.ID, &ledger.GroupID, &ledger.Name, &ledger.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ledger %s: %w", ledgerID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}

	if err := s.loadTransactions(ctx, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// ListLedgersByGroup retrieves all ledgers of a group in creation order.
func (s *SQLiteStore) ListLedgersByGroup(ctx context.Context, groupID string) ([]*models.Ledger, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, group_id, name, created_at FROM ledgers WHERE group_id = ? ORDER BY created_at, rowid",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers by group: %w", err)
	}

	var ledgers []*models.Ledger
	for rows.Next() {
		ledger := &models.Ledger{}
		if err := rows.Scan(&ledger.ID, &ledger.GroupID, &ledger.Name, &ledger.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, ledger)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledgers: %w", err)
	}

	for _, ledger := range ledgers {
		if err := s.loadTransactions(ctx, ledger); err != nil {
			return nil, err
		}
	}
	return ledgers, nil
}

// AddTransaction appends a transaction at the end of a ledger.
func (s *SQLiteStore) AddTransaction(ctx context.Context, ledgerID string, transaction *models.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireRow(ctx, tx, "SELECT 1 FROM ledgers WHERE id = ?", ledgerID); err != nil {
		return fmt.Errorf("ledger %s: %w", ledgerID, err)
	}

	var next int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM transactions WHERE ledger_id = ?",
		ledgerID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to get next transaction position: %w", err)
	}

	if err := insertTransaction(ctx, tx, ledgerID, next, transaction); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteLedger removes a ledger by ID. Transactions cascade.
func (s *SQLiteStore) DeleteLedger(ctx context.Context, ledgerID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM ledgers WHERE id = ?", ledgerID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("ledger %s: %w", ledgerID, storage.ErrNotFound)
	}
	return nil
}

// loadTransactions fills ledger.Transactions with payers and beneficiaries.
// Each table is read with a single query to avoid nested open cursors.
func (s *SQLiteStore) loadTransactions(ctx context.Context, ledger *models.Ledger) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, description FROM transactions WHERE ledger_id = ? ORDER BY position",
		ledger.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	ledger.Transactions = nil
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Description); err != nil {
			return fmt.Errorf("failed to scan transaction: %w", err)
		}
		index[t.ID] = len(ledger.Transactions)
		ledger.Transactions = append(ledger.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate transactions: %w", err)
	}
	rows.Close()

	payerRows, err := s.db.QueryContext(ctx,
		`SELECT p.transaction_id, p.person_id, p.name, p.amount
		 FROM transaction_payers p JOIN transactions t ON t.id = p.transaction_id
		 WHERE t.ledger_id = ? ORDER BY t.position, p.position`,
		ledger.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get payers: %w", err)
	}
	defer payerRows.Close()

	for payerRows.Next() {
		var txID string
		var p models.Payer
		if err := payerRows.Scan(&txID, &p.ID, &p.Name, &p.Amount); err != nil {
			return fmt.Errorf("failed to scan payer: %w", err)
		}
		if i, ok := index[txID]; ok {
			ledger.Transactions[i].Payers = append(ledger.Transactions[i].Payers, p)
		}
	}
	if err := payerRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate payers: %w", err)
	}
	payerRows.Close()

	benRows, err := s.db.QueryContext(ctx,
		`SELECT b.transaction_id, b.person_id, b.name
		 FROM transaction_beneficiaries b JOIN transactions t ON t.id = b.transaction_id
		 WHERE t.ledger_id = ? ORDER BY t.position, b.position`,
		ledger.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get beneficiaries: %w", err)
	}
	defer benRows.Close()

	for benRows.Next() {
		var txID string
		var p models.Person
		if err := benRows.Scan(&txID, &p.ID, &p.Name); err != nil {
			return fmt.Errorf("failed to scan beneficiary: %w", err)
		}
		if i, ok := index[txID]; ok {
			ledger.Transactions[i].Beneficiaries = append(ledger.Transactions[i].Beneficiaries, p)
		}
	}
	if err := benRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate beneficiaries: %w", err)
	}
	return nil
}

// insertTransaction always assigns a fresh ID: transaction IDs are unique
// across ledgers, so one copied from another ledger would collide.
func insertTransaction(ctx context.Context, tx *sql.Tx, ledgerID string, position int, t *models.Transaction) error {
	t.ID = uuid.New().String()

	_, err := tx.ExecContext(ctx,
		"INSERT INTO transactions (id, ledger_id, description, position) VALUES (?, ?, ?, ?)",
		t.ID, ledgerID, t.Description, position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for i, p := range t.Payers {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO transaction_payers (transaction_id, position, person_id, name, amount) VALUES (?, ?, ?, ?, ?)",
			t.ID, i, p.ID, p.Name, p.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payer: %w", err)
		}
	}

	for i, b := range t.Beneficiaries {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO transaction_beneficiaries (transaction_id, position, person_id, name) VALUES (?, ?, ?, ?)",
			t.ID, i, b.ID, b.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert beneficiary: %w", err)
		}
	}
	return nil
}

// requireRow returns storage.ErrNotFound when query yields no row.
func requireRow(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	var exists int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	return nil
}
