package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var driverColumns = []string{"id", "city", "available", "completed_deliveries", "total_earnings", "updated_at"}

func (r *postgresRepo) GetDriver(ctx context.Context, id string) (entities.Driver, error) {
	query, args := r.qb.Select(driverColumns...).
		From("drivers").
		Where(sq.Eq{"id": id}).
		MustSql()

	var d Driver
	err := r.getContext(ctx, &d, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Driver{}, entities.ErrDriverNotFound
	}
	if err != nil {
		return entities.Driver{}, fmt.Errorf("failed to get driver: %w", err)
	}
	return DriverToEntity(d), nil
}

// UpsertDriver registers the driver or updates city and availability.
// Counters are never touched here.
func (r *postgresRepo) UpsertDriver(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	query, args := r.qb.Insert("drivers").
		Columns("id", "city", "available").
		Values(d.ID, d.City, d.Available).
		Suffix("ON CONFLICT (id) DO UPDATE SET city = EXCLUDED.city, available = EXCLUDED.available, updated_at = now() RETURNING " +
			strings.Join(driverColumns, ", ")).
		MustSql()

	var row Driver
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Driver{}, fmt.Errorf("failed to upsert driver: %w", err)
	}
	return DriverToEntity(row), nil
}

// AddDelivery atomically bumps the driver's counters.
func (r *postgresRepo) AddDelivery(ctx context.Context, driverID string, earnings float64) error {
	query, args := r.qb.Update("drivers").
		Set("completed_deliveries", sq.Expr("completed_deliveries + 1")).
		Set("total_earnings", sq.Expr("total_earnings + ?", earnings)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": driverID}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update driver counters: %w", err)
	}
	if !ok {
		return entities.ErrDriverNotFound
	}
	return nil
}
