package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SelectAll returns every departure joined with its group's train number.
//
// No ORDER BY is applied; row order is whatever the storage engine
// returns and is not guaranteed stable across calls.
//
// Returns an empty slice (not nil) if no departures exist.
func (s *Store) SelectAll(ctx context.Context) ([]Departure, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT trains.train_punkt, groups.train_title, trains.train_time
		FROM trains
		INNER JOIN groups ON groups.train_id = trains.train_nomer
	`)
	if err != nil {
		return nil, fmt.Errorf("select all: %w", err)
	}
	return collectDepartures(rows)
}

// SelectByNumber returns the departures whose group title equals nomer.
//
// The comparison is textual: group titles hold the decimal form of the
// number given to AddTrain, so "101" matches a departure added with
// nomer 101 while "0101" does not. An unknown number yields an empty
// slice, not an error.
func (s *Store) SelectByNumber(ctx context.Context, nomer string) ([]Departure, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT trains.train_punkt, groups.train_title, trains.train_time
		FROM trains
		INNER JOIN groups ON groups.train_id = trains.train_nomer
		WHERE groups.train_title = ?
	`, nomer)
	if err != nil {
		return nil, fmt.Errorf("select by number: %w", err)
	}
	return collectDepartures(rows)
}

// collectDepartures drains rows into Departure values and closes them.
func collectDepartures(rows *sql.Rows) ([]Departure, error) {
	defer rows.Close()

	departures := []Departure{}
	for rows.Next() {
		var d Departure
		if err := rows.Scan(&d.Punkt, &d.Nomer, &d.Time); err != nil {
			return nil, fmt.Errorf("scan departure: %w", err)
		}
		departures = append(departures, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate departures: %w", err)
	}

	return departures, nil
}
