package database

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// Postgres implements store.Store on top of database/sql + lib/pq.
type Postgres struct {
	db *sql.DB
}

// New wraps an open database handle.
func New(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

var _ store.Store = (*Postgres)(nil)

// translateErr maps driver errors onto the store's error taxonomy.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return store.ErrNotFound
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			return store.ErrConflict
		case "23503": // foreign_key_violation
			return store.ErrConflict
		}
	}
	return err
}
