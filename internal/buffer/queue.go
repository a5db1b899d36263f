// Package buffer - локальная надёжная очередь заказов, принятых, пока
// основное хранилище было недоступно.
package buffer

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Entry struct {
	Order     entities.Order
	Attempts  int
	LastError string
}

type Queue struct {
	db *sqlx.DB
}

// Open открывает или создаёт файл SQLite по path. Для тестов подходит ":memory:".
func Open(path string) (*Queue, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create buffer dir: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// SQLite допускает одного писателя, а :memory: живёт в рамках соединения
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	_, _ = db.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Queue{db: db}, nil
}

func migrate(db *sqlx.DB) error {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, f := range files {
		text, err := fs.ReadFile(migrationsFS, f)
		if err != nil {
			return err
		}
		if _, err := db.Exec(string(text)); err != nil {
			return fmt.Errorf("buffer migration %s failed: %w", f, err)
		}
	}
	return nil
}

// Enqueue сохраняет заказ один раз. Заказ, уже стоящий в очереди, не перезаписывается.
func (q *Queue) Enqueue(ctx context.Context, o entities.Order) error {
	o.Buffered = true
	payload, err := o.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO pending_orders (id, payload) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`,
		o.ID, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue order: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		bufferedOrders.Inc()
	}
	return nil
}

type pendingRow struct {
	ID        string         `db:"id"`
	Payload   []byte         `db:"payload"`
	Attempts  int            `db:"attempts"`
	LastError sql.NullString `db:"last_error"`
}

// Pending возвращает до limit записей, старые первыми, и id строк,
// которые не удалось декодировать.
func (q *Queue) Pending(ctx context.Context, limit int) ([]Entry, []string, error) {
	var rows []pendingRow
	if err := q.db.SelectContext(ctx, &rows,
		`SELECT id, payload, attempts, last_error FROM pending_orders ORDER BY created_at, id LIMIT ?`, limit,
	); err != nil {
		return nil, nil, fmt.Errorf("failed to read buffer: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	var broken []string
	for _, row := range rows {
		var o entities.Order
		if err := o.Unmarshal(row.Payload); err != nil {
			broken = append(broken, row.ID)
			continue
		}
		entries = append(entries, Entry{Order: o, Attempts: row.Attempts, LastError: row.LastError.String})
	}
	return entries, broken, nil
}

func (q *Queue) Delete(ctx context.Context, id string) error {
	if _, err := q.db.ExecContext(ctx, `DELETE FROM pending_orders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete buffered order: %w", err)
	}
	return nil
}

func (q *Queue) MarkFailed(ctx context.Context, id string, cause error) error {
	if _, err := q.db.ExecContext(ctx,
		`UPDATE pending_orders SET attempts = attempts + 1, last_error = ? WHERE id = ?`, cause.Error(), id,
	); err != nil {
		return fmt.Errorf("failed to record buffer failure: %w", err)
	}
	return nil
}

func (q *Queue) Len(ctx context.Context) (int, error) {
	var n int
	if err := q.db.GetContext(ctx, &n, `SELECT count(*) FROM pending_orders`); err != nil {
		return 0, err
	}
	return n, nil
}

func (q *Queue) Close() error {
	return q.db.Close()
}
