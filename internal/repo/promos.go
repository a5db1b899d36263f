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

func (r *postgresRepo) GetPromo(ctx context.Context, code string) (entities.Promo, error) {
	query, args := r.qb.Select("code", "kind", "magnitude", "min_order", "restaurant_id", "expires_at").
		From("promotions").
		Where(sq.Expr("upper(code) = ?", strings.ToUpper(code))).
		MustSql()

	var p Promo
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Promo{}, entities.ErrPromoNotFound
	}
	if err != nil {
		return entities.Promo{}, fmt.Errorf("failed to get promo: %w", err)
	}
	return PromoToEntity(p), nil
}
