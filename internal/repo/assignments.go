package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// CreateAssignment вставляет активное назначение. Частичный уникальный индекс
// по order_id превращает второе активное назначение в ErrAlreadyClaimed.
func (r *postgresRepo) CreateAssignment(ctx context.Context, a entities.Assignment) error {
	pLat, pLng := coordinatesArgs(a.PickupAddress.Coordinates)
	dLat, dLng := coordinatesArgs(a.DropoffAddress.Coordinates)

	query, args := r.qb.Insert("delivery_assignments").
		Columns(
			"id", "order_id", "driver_id", "status",
			"pickup_address", "pickup_city", "pickup_lat", "pickup_lng",
			"dropoff_address", "dropoff_city", "dropoff_lat", "dropoff_lng",
			"driver_earnings", "assigned_at",
		).
		Values(
			a.ID, a.OrderID, a.DriverID, a.Status,
			a.PickupAddress.Text, a.PickupAddress.City, pLat, pLng,
			a.DropoffAddress.Text, a.DropoffAddress.City, dLat, dLng,
			a.DriverEarnings, a.AssignedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return entities.ErrAlreadyClaimed
		}
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetAssignment(ctx context.Context, id string) (entities.Assignment, error) {
	query, args := r.qb.Select(assignmentColumns...).
		From("delivery_assignments").
		Where(sq.Eq{"id": id}).
		MustSql()
	return r.getAssignment(ctx, query, args...)
}

// ActiveAssignment возвращает единственное неотклонённое назначение заказа.
func (r *postgresRepo) ActiveAssignment(ctx context.Context, orderID string) (entities.Assignment, error) {
	query, args := r.qb.Select(assignmentColumns...).
		From("delivery_assignments").
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.NotEq{"status": entities.AssignmentRejected}).
		MustSql()
	return r.getAssignment(ctx, query, args...)
}

func (r *postgresRepo) HasAssignment(ctx context.Context, orderID, driverID string) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("delivery_assignments").
		Where(sq.Eq{"order_id": orderID, "driver_id": driverID}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return exists, nil
}

// TransitionAssignment переводит назначение между статусами через CAS
// и проставляет соответствующую метку времени.
func (r *postgresRepo) TransitionAssignment(ctx context.Context, id string, from, to entities.AssignmentStatus, reason entities.RejectionReason) (bool, error) {
	q := r.qb.Update("delivery_assignments").
		Set("status", to).
		Where(sq.Eq{"id": id, "status": from})

	switch to {
	case entities.AssignmentPickedUp:
		q = q.Set("picked_up_at", sq.Expr("now()"))
	case entities.AssignmentDelivered:
		q = q.Set("delivered_at", sq.Expr("now()"))
	case entities.AssignmentRejected:
		q = q.Set("rejected_at", sq.Expr("now()")).Set("rejection_reason", reason)
	}

	query, args := q.MustSql()
	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update assignment: %w", err)
	}
	return ok, nil
}

// LockStaleAssignments выбирает зависшие назначения и блокирует их заказы,
// пропуская заказы, уже занятые другими транзакциями. Заказ блокируется
// раньше назначения на всех путях записи.
func (r *postgresRepo) LockStaleAssignments(ctx context.Context, assignedBefore time.Time, limit int) ([]entities.Assignment, error) {
	query, args := r.qb.Select(qualified("a", assignmentColumns)...).
		From("delivery_assignments a").
		Join("orders o ON o.id = a.order_id").
		Where(sq.Eq{"a.status": entities.AssignmentAssigned}).
		Where(sq.Eq{"o.status": entities.StatusAssigned}).
		Where(sq.Lt{"a.assigned_at": assignedBefore}).
		OrderBy("a.assigned_at").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE OF o SKIP LOCKED").
		MustSql()

	var rows []Assignment
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select stale assignments: %w", err)
	}

	res := make([]entities.Assignment, 0, len(rows))
	for _, row := range rows {
		res = append(res, AssignmentToEntity(row))
	}
	return res, nil
}

func (r *postgresRepo) getAssignment(ctx context.Context, query string, args ...any) (entities.Assignment, error) {
	var row Assignment
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Assignment{}, entities.ErrAssignmentNotFound
	}
	if err != nil {
		return entities.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}
	return AssignmentToEntity(row), nil
}
