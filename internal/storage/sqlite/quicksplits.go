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

// SaveQuickSplit inserts a quick split or replaces the saved one with the same ID.
func (s *SQLiteStore) SaveQuickSplit(ctx context.Context, split *models.QuickSplit) error {
	if split.ID == "" {
		split.ID = uuid.New().String()
	}
	split.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Cascades to the people rows.
	if _, err := tx.ExecContext(ctx, "DELETE FROM quick_splits WHERE id = ?", split.ID); err != nil {
		return fmt.Errorf("failed to replace quick split: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO quick_splits (id, total_amount, total_people, mode, updated_at) VALUES (?, ?, ?, ?, ?)",
		split.ID, split.TotalAmount, split.TotalNoOfPeople, string(split.Mode), split.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quick split: %w", err)
	}

	for i, p := range split.People {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO quick_split_people (split_id, position, person_id, name, paid, cost, locked)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			split.ID, i, p.ID, p.Name, p.Paid, p.Cost, p.Locked,
		)
		if err != nil {
			return fmt.Errorf("failed to insert quick split person: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetQuickSplit retrieves a saved quick split by ID.
func (s *SQLiteStore) GetQuickSplit(ctx context.Context, splitID string) (*models.QuickSplit, error) {
	split := &models.QuickSplit{}
	var mode string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, total_amount, total_people, mode, updated_at FROM quick_splits WHERE id = ?",
		splitID,
	).Scan(&split.ID, &split.TotalAmount, &split.TotalNoOfPeople, &mode, &split.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("quick split %s: %w", splitID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quick split: %w", err)
	}
	split.Mode = models.SplitMode(mode)

	rows, err := s.db.QueryContext(ctx,
		"SELECT person_id, name, paid, cost, locked FROM quick_split_people WHERE split_id = ? ORDER BY position",
		splitID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get quick split people: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.SplitEntry
		if err := rows.Scan(&p.ID, &p.Name, &p.Paid, &p.Cost, &p.Locked); err != nil {
			return nil, fmt.Errorf("failed to scan quick split person: %w", err)
		}
		split.People = append(split.People, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quick split people: %w", err)
	}
	return split, nil
}
