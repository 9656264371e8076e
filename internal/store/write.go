package store

import (
	"context"
	"fmt"
	"strconv"
)

// AddTrain records one departure, creating the group row for nomer on
// first use.
//
// The group insert uses ON CONFLICT (train_title) DO NOTHING against the
// UNIQUE constraint, so two adds of the same new number cannot produce two
// group rows; the follow-up select always resolves the surviving row. All
// three statements run in one transaction.
//
// The train number is stored in the group title as its decimal text form;
// SelectByNumber compares against that form. No validation happens before
// submission - constraint violations surface from the driver.
func (s *Store) AddTrain(ctx context.Context, punkt string, nomer int, departureTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("add train: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	title := strconv.Itoa(nomer)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO groups (train_id, train_title)
		VALUES (nextval('type_st'), ?)
		ON CONFLICT (train_title) DO NOTHING
	`, title)
	if err != nil {
		return fmt.Errorf("add train: insert group: %w", err)
	}

	var groupID int64
	err = tx.QueryRowContext(ctx, `
		SELECT train_id FROM groups WHERE train_title = ?
	`, title).Scan(&groupID)
	if err != nil {
		return fmt.Errorf("add train: resolve group: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trains (train_id, train_punkt, train_nomer, train_time)
		VALUES (nextval('train_st'), ?, ?, ?)
	`, punkt, groupID, departureTime)
	if err != nil {
		return fmt.Errorf("add train: insert record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("add train: commit: %w", err)
	}

	return nil
}
