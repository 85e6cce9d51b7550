package db

import "database/sql"

// Execer is satisfied by both *sql.DB and *sql.Tx so repositories can run
// the same statement inside or outside an explicit transaction.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
