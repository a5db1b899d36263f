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

const (
	lockOrderChat = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

	// created_at строго растёт в пределах заказа
	insertMessage = `INSERT INTO order_messages (id, order_id, sender_role, sender_id, content, created_at)
SELECT $1::uuid, $2::uuid, $3, $4, $5, GREATEST(clock_timestamp(), MAX(created_at) + interval '1 microsecond')
FROM order_messages WHERE order_id = $2::uuid
ON CONFLICT (id) DO NOTHING`
)

// InsertMessage идемпотентна по id сообщения. Вызывается в транзакции:
// advisory-блокировка заказа держится до коммита, поэтому сообщения одного
// заказа фиксируются в порядке своих меток времени.
func (r *postgresRepo) InsertMessage(ctx context.Context, m entities.Message) (bool, error) {
	if _, err := r.execContext(ctx, lockOrderChat, m.OrderID); err != nil {
		return false, fmt.Errorf("failed to lock order chat: %w", err)
	}

	inserted, err := r.execAffected(ctx, insertMessage, m.ID, m.OrderID, m.SenderRole, m.SenderID, m.Content)
	if err != nil {
		return false, fmt.Errorf("failed to insert message: %w", err)
	}
	return inserted, nil
}

var messageColumns = []string{"id", "order_id", "sender_role", "sender_id", "content", "created_at"}

func (r *postgresRepo) GetMessage(ctx context.Context, id string) (entities.Message, error) {
	query, args := r.qb.Select(messageColumns...).
		From("order_messages").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row Message
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Message{}, entities.ErrMessageNotFound
	}
	if err != nil {
		return entities.Message{}, fmt.Errorf("failed to get message: %w", err)
	}
	return MessageToEntity(row), nil
}

func (r *postgresRepo) ListMessages(ctx context.Context, orderID string, after *time.Time, limit int) ([]entities.Message, error) {
	q := r.qb.Select(messageColumns...).
		From("order_messages").
		Where(sq.Eq{"order_id": orderID})
	if after != nil {
		q = q.Where(sq.Gt{"created_at": *after})
	}

	query, args := q.OrderBy("created_at", "id").Limit(uint64(limit)).MustSql()

	var rows []Message
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}

	res := make([]entities.Message, 0, len(rows))
	for _, row := range rows {
		res = append(res, MessageToEntity(row))
	}
	return res, nil
}
