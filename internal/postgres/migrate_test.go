package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations(migrationsFS)
	require.NoError(t, err)
	require.Len(t, migrations, 4)

	for i, m := range migrations {
		assert.Equal(t, i+1, m.version)
	}
	assert.Equal(t, "orders", migrations[0].name)
}

func TestMigrate_SkipsApplied(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db := sqlx.NewDb(sqlDB, "postgres")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1).AddRow(2).AddRow(3))

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS order_messages").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, Migrate(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
