package postgres

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var migrationFileRe = regexp.MustCompile(`^([0-9]{4})_(.+)\.up\.sql$`)

type migration struct {
	version int
	name    string
	file    string
}

// Migrate применяет ещё не применённые up-миграции по порядку версий.
// Каждая миграция выполняется в своей транзакции.
func Migrate(db *sqlx.DB) error {
	migrations, err := loadMigrations(migrationsFS)
	if err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var applied []int
	if err := db.Select(&applied, `SELECT version FROM schema_migrations`); err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	for _, m := range migrations {
		if done[m.version] {
			continue
		}
		text, err := fs.ReadFile(migrationsFS, m.file)
		if err != nil {
			return err
		}

		tx, err := db.Beginx()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(text)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %04d_%s failed: %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

func loadMigrations(fsys fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var res []migration
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := migrationFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		version, _ := strconv.Atoi(m[1])
		res = append(res, migration{version: version, name: m[2], file: "migrations/" + e.Name()})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].version < res[j].version })
	return res, nil
}
