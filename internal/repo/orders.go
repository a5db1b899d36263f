package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// InsertOrder вставляет заказ один раз. Повторный id ничего не меняет
// и возвращает inserted=false.
func (r *postgresRepo) InsertOrder(ctx context.Context, o entities.Order) (bool, error) {
	dLat, dLng := coordinatesArgs(o.DeliveryAddress.Coordinates)
	rLat, rLng := coordinatesArgs(o.Restaurant.Address.Coordinates)

	query, args := r.qb.Insert("orders").
		Columns(
			"id", "customer_id", "restaurant_id", "status",
			"subtotal", "delivery_fee", "discount", "total", "promo_code",
			"delivery_address", "delivery_city", "delivery_lat", "delivery_lng",
			"restaurant_name", "restaurant_address", "restaurant_city", "restaurant_lat", "restaurant_lng",
			"contact_name", "contact_phone", "notes", "payment_method",
			"created_at", "updated_at",
		).
		Values(
			o.ID, o.CustomerID, o.RestaurantID, o.Status,
			o.Subtotal, o.DeliveryFee, o.Discount, o.Total, nullString(o.PromoCode),
			o.DeliveryAddress.Text, o.DeliveryAddress.City, dLat, dLng,
			o.Restaurant.Name, o.Restaurant.Address.Text, o.Restaurant.Address.City, rLat, rLng,
			o.Contact.Name, o.Contact.Phone, nullString(o.Notes), o.PaymentMethod,
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	inserted, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert order: %w", err)
	}
	return inserted, nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "name", "unit_price", "quantity").
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.Name, it.UnitPrice, it.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "position", "product_id", "name", "unit_price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders")
	if f.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": f.CustomerID})
	}
	if f.RestaurantID != "" {
		q = q.Where(sq.Eq{"restaurant_id": f.RestaurantID})
	}
	if f.DriverID != "" {
		q = q.Where(sq.Expr("id IN (SELECT order_id FROM delivery_assignments WHERE driver_id = ?)", f.DriverID))
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}

	query, args := q.OrderBy("created_at DESC", "id").MustSql()
	return r.selectOrders(ctx, query, args...)
}

// ListClaimable возвращает подтверждённые или готовые заказы города без активного назначения.
func (r *postgresRepo) ListClaimable(ctx context.Context, city string, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": entities.ClaimableStatuses}).
		Where(sq.Expr("lower(delivery_city) = lower(?)", city)).
		Where("NOT EXISTS (SELECT 1 FROM delivery_assignments a WHERE a.order_id = orders.id AND a.status <> 'rejected')").
		OrderBy("created_at ASC", "id").
		Limit(uint64(limit)).
		MustSql()

	return r.selectOrders(ctx, query, args...)
}

// UpdateOrderStatus - compare-and-set: строка меняется, только пока её
// статус входит в from.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, id string, from []entities.OrderStatus, to entities.OrderStatus) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": from}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	return ok, nil
}

// SetDriverLocation сохраняет последнюю позицию курьера. nil её сбрасывает.
func (r *postgresRepo) SetDriverLocation(ctx context.Context, id string, loc *entities.Coordinates) error {
	lat, lng := coordinatesArgs(loc)
	query, args := r.qb.Update("orders").
		Set("driver_lat", lat).
		Set("driver_lng", lng).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set driver location: %w", err)
	}
	if !ok {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) selectOrders(ctx context.Context, query string, args ...any) ([]entities.Order, error) {
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Получаем товары одним запросом для всех заказов
	query, args = r.qb.Select("order_id", "position", "product_id", "name", "unit_price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}
