// Package store provides DuckDB-backed durable storage for train departures.
//
// The store keeps an insert-only log across two tables:
//   - Groups: one row per distinct train number (the group "title")
//   - Trains: one row per departure, referencing its group
//
// Primary keys come from two independent named sequences (type_st for
// groups, train_st for departures), both starting at 1.
//
// Group deduplication is atomic: groups.train_title carries a UNIQUE
// constraint and AddTrain inserts with ON CONFLICT DO NOTHING, so
// concurrent adds of the same new number converge on a single group row.
//
// Rows are never updated or deleted. Reads apply no ORDER BY; row order is
// whatever the storage engine returns.
package store
