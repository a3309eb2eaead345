// filepath: internal/repository/dbtx.go
package repository

import (
	"database/sql"
	"fmt"
)

// Tx is a wrapper around *sql.Tx that provides transactional database operations.
// Cache entries invalidated by the transaction are dropped once it commits.
type Tx struct {
	*sql.Tx
	repo      *Repository
	evictions []string
}

// Commit commits the transaction and applies pending cache evictions.
func (tx *Tx) Commit() error {
	if err := tx.Tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	for _, key := range tx.evictions {
		tx.repo.Cache.Delete(key)
	}
	tx.evictions = nil
	return nil
}

func (tx *Tx) evict(keys ...string) {
	tx.evictions = append(tx.evictions, keys...)
}
