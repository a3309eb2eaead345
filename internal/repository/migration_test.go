// filepath: internal/repository/migration_test.go
package repository

import (
	"testing"

	"watchlist/internal/shared"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchema(t *testing.T) {
	repo, err := NewRepository(testConfig(t))
	assert.NoError(t, err)
	defer repo.Close()

	// 1. New DB should be invalid (needs migration)
	err = repo.ValidateSchema()
	assert.ErrorIs(t, err, shared.ErrSchemaOutdated)
	assert.Contains(t, err.Error(), "watchlist migrate up")

	// 2. Apply Migrations (Simulate "migrate up")
	assert.NoError(t, repo.MigrateUp())

	// 3. Verify Schema is now Valid
	assert.NoError(t, repo.ValidateSchema())

	// 4. Rolling back makes it outdated again
	assert.NoError(t, repo.MigrateDown())
	assert.ErrorIs(t, repo.ValidateSchema(), shared.ErrSchemaOutdated)
}

func TestEnsureSchemaBootstrapped(t *testing.T) {
	t.Run("Fresh Database", func(t *testing.T) {
		repo, err := NewRepository(testConfig(t))
		assert.NoError(t, err)
		defer repo.Close()

		err = repo.EnsureSchemaBootstrapped()
		assert.NoError(t, err)
		assert.NoError(t, repo.ValidateSchema(), "Fresh DB should be fully migrated after bootstrap")

		var tableName string
		err = repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='reviews'").Scan(&tableName)
		assert.NoError(t, err)
		assert.Equal(t, "reviews", tableName)
	})

	t.Run("Existing Database (Skip)", func(t *testing.T) {
		repo, err := NewRepository(testConfig(t))
		assert.NoError(t, err)
		defer repo.Close()

		// An "existing" store: version table present, no watchlist tables.
		_, err = repo.DB.Exec("CREATE TABLE goose_db_version (id INTEGER PRIMARY KEY, version_id INTEGER, is_applied BOOLEAN, tstamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP);")
		assert.NoError(t, err)

		err = repo.EnsureSchemaBootstrapped()
		assert.NoError(t, err)

		var count int
		err = repo.DB.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='movies'").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 0, count, "Bootstrap must not migrate an existing store")
	})

	t.Run("Idempotent", func(t *testing.T) {
		repo := setupTestDB(t)
		createTestUser(t, repo, "ada", nil)

		assert.NoError(t, repo.EnsureSchemaBootstrapped())

		var count int
		assert.NoError(t, repo.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
		assert.Equal(t, 1, count, "Existing data must survive a second bootstrap")
	})
}

func TestMigrationStatus(t *testing.T) {
	repo := setupTestDB(t)
	assert.NoError(t, repo.MigrationStatus())
}
