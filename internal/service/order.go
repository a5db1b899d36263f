package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/fee"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/trm"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100

	// суммы хранятся в NUMERIC(12,2)
	maxUnitPrice = 1_000_000
	maxCartLines = 50
	maxQuantity  = 100
)

type CheckoutInput struct {
	OrderID         string
	RestaurantID    string
	Restaurant      entities.RestaurantSnapshot
	Items           []entities.LineItem
	DeliveryAddress entities.Address
	Contact         entities.Contact
	Notes           string
	PaymentMethod   entities.PaymentMethod
	PromoCode       string
}

type Quote struct {
	fee.Breakdown
	DeliveryCoordinates *entities.Coordinates
	MapCenter           *entities.Coordinates
	Fallback            bool
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	store     Store
	cache     Cache
	geocoder  Geocoder
	buffer    Buffer
	events    notifier
	fees      fee.Calculator
	opts      options
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	store Store,
	cache Cache,
	geocoder Geocoder,
	buffer Buffer,
	events Notifier,
	fees fee.Calculator,
	opts ...Option,
) *orderService {
	o := newOptions(opts)
	logger = logger.With(slog.String("service", "order"))
	return &orderService{
		logger:    logger,
		txManager: txManager,
		store:     store,
		cache:     cache,
		geocoder:  geocoder,
		buffer:    buffer,
		events:    notifier{logger: logger, next: events, now: o.now},
		fees:      fees,
		opts:      o,
	}
}

// QuoteCheckout считает стоимость корзины, ничего не сохраняя.
func (s *orderService) QuoteCheckout(ctx context.Context, actor entities.Actor, in CheckoutInput) (Quote, error) {
	if !actor.Is(entities.RoleCustomer) {
		return Quote{}, fmt.Errorf("%w: only customers can check out", entities.ErrForbidden)
	}
	if err := validateCheckout(in); err != nil {
		return Quote{}, err
	}
	return s.quote(ctx, in)
}

func (s *orderService) CreateOrder(ctx context.Context, actor entities.Actor, in CheckoutInput) (entities.Order, error) {
	if !actor.Is(entities.RoleCustomer) {
		return entities.Order{}, fmt.Errorf("%w: only customers can place orders", entities.ErrForbidden)
	}
	if err := validateCheckout(in); err != nil {
		return entities.Order{}, err
	}

	q, err := s.quote(ctx, in)
	if err != nil {
		return entities.Order{}, err
	}

	now := s.opts.now()
	order := entities.Order{
		ID:              in.OrderID,
		CustomerID:      actor.ID,
		RestaurantID:    in.RestaurantID,
		Status:          entities.StatusPending,
		Items:           in.Items,
		Subtotal:        q.Subtotal,
		DeliveryFee:     q.DeliveryFee,
		Discount:        q.Discount,
		Total:           q.Total,
		PromoCode:       strings.ToUpper(strings.TrimSpace(in.PromoCode)),
		DeliveryAddress: in.DeliveryAddress,
		Restaurant:      in.Restaurant,
		Contact:         in.Contact,
		Notes:           in.Notes,
		PaymentMethod:   in.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	order.DeliveryAddress.Coordinates = q.DeliveryCoordinates
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if err := order.CheckTotals(); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrInvalidOrder, err)
	}

	saved, inserted, err := s.persist(ctx, order)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrStoreUnavailable):
		s.logger.WarnContext(ctx, "order store unavailable, buffering order",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
		if err := s.buffer.Enqueue(ctx, order); err != nil {
			s.logger.ErrorContext(ctx, "failed to buffer order", slog.String("order_id", order.ID), slog.Any("error", err))
			return entities.Order{}, fmt.Errorf("failed to buffer order: %w", err)
		}
		order.Buffered = true
		return order, nil
	default:
		return entities.Order{}, err
	}

	if inserted {
		s.logger.InfoContext(ctx, "order created", slog.String("order_id", saved.ID))
		s.events.notify(ctx, orderEvent(entities.EventOrderCreated, saved))
	}
	return saved, nil
}

// ReconcileBuffered записывает заказ, принятый во время недоступности хранилища.
func (s *orderService) ReconcileBuffered(ctx context.Context, order entities.Order) error {
	order.Buffered = false
	saved, inserted, err := s.persist(ctx, order)
	if err != nil {
		return err
	}
	if inserted {
		s.logger.InfoContext(ctx, "buffered order reconciled", slog.String("order_id", saved.ID))
		s.events.notify(ctx, orderEvent(entities.EventOrderCreated, saved))
	}
	return nil
}

// persist - идемпотентная запись по id заказа.
func (s *orderService) persist(ctx context.Context, order entities.Order) (entities.Order, bool, error) {
	var (
		saved    entities.Order
		inserted bool
	)
	err := utils.Retry(ctx, s.opts.retry, func() error {
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			inserted, err = s.store.InsertOrder(ctx, order)
			if err != nil {
				return err
			}
			if inserted {
				if err := s.store.SaveItems(ctx, order.ID, order.Items); err != nil {
					return err
				}
			}
			saved, err = s.store.GetOrder(ctx, order.ID)
			return err
		})
		// хранилище ответило отказом, повтор ничего не изменит
		if err != nil && !storeUnavailable(err) {
			return utils.Permanent(err)
		}
		return err
	}, entities.ErrInvalidOrder)
	if err != nil {
		if storeUnavailable(err) {
			return entities.Order{}, false, fmt.Errorf("%w: %w", entities.ErrStoreUnavailable, err)
		}
		return entities.Order{}, false, fmt.Errorf("failed to save order: %w", err)
	}
	if saved.CustomerID != order.CustomerID {
		return entities.Order{}, false, fmt.Errorf("%w: order id already taken", entities.ErrForbidden)
	}
	return saved, inserted, nil
}

func (s *orderService) quote(ctx context.Context, in CheckoutInput) (Quote, error) {
	var promo *entities.Promo
	if code := strings.TrimSpace(in.PromoCode); code != "" {
		p, err := s.store.GetPromo(ctx, strings.ToUpper(code))
		if errors.Is(err, entities.ErrPromoNotFound) {
			return Quote{}, entities.Validationf("unknown promo code %s", code)
		}
		if err != nil {
			return Quote{}, fmt.Errorf("%w: failed to resolve promo: %w", entities.ErrUpstreamUnavailable, err)
		}
		if err := p.Applicable(fee.Subtotal(in.Items), in.RestaurantID, s.opts.now()); err != nil {
			return Quote{}, err
		}
		promo = &p
	}

	var q Quote
	q.DeliveryCoordinates = in.DeliveryAddress.Coordinates
	if q.DeliveryCoordinates == nil {
		point, err := s.geocoder.Forward(ctx, in.DeliveryAddress.Text, in.DeliveryAddress.City)
		if err != nil {
			s.logger.WarnContext(ctx, "geocoding failed, using minimum fee",
				slog.String("city", in.DeliveryAddress.City),
				slog.Any("error", err),
			)
		}
		if !point.Fallback {
			q.DeliveryCoordinates = point.Coordinates
		}
		q.Fallback = point.Fallback
		q.MapCenter = point.Coordinates
	}
	if q.MapCenter == nil {
		q.MapCenter = q.DeliveryCoordinates
	}
	if q.MapCenter == nil {
		if center, ok := s.geocoder.CityCenter(in.DeliveryAddress.City); ok {
			q.MapCenter = &center
		}
	}

	q.Breakdown = s.fees.Quote(in.Items, in.Restaurant.Address.Coordinates, q.DeliveryCoordinates, promo)
	return q, nil
}

func validateCheckout(in CheckoutInput) error {
	if len(in.Items) == 0 {
		return entities.Validationf("cart is empty")
	}
	if len(in.Items) > maxCartLines {
		return entities.Validationf("cart holds at most %d lines", maxCartLines)
	}
	for i, it := range in.Items {
		if it.Quantity < 1 || it.Quantity > maxQuantity {
			return entities.Validationf("item %d: quantity must be between 1 and %d", i, maxQuantity)
		}
		if it.UnitPrice < 0 || it.UnitPrice > maxUnitPrice {
			return entities.Validationf("item %d: unit price must be between 0 and %d", i, maxUnitPrice)
		}
	}
	if strings.TrimSpace(in.RestaurantID) == "" {
		return entities.Validationf("restaurant is required")
	}
	if strings.TrimSpace(in.DeliveryAddress.Text) == "" || strings.TrimSpace(in.DeliveryAddress.City) == "" {
		return entities.Validationf("delivery address and city are required")
	}
	if !in.PaymentMethod.Valid() {
		return entities.Validationf("unsupported payment method %q", in.PaymentMethod)
	}
	if in.OrderID != "" {
		if _, err := uuid.Parse(in.OrderID); err != nil {
			return entities.Validationf("order id must be a uuid")
		}
	}
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if err := s.canView(ctx, actor, order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// loadOrder читает через кэш.
func (s *orderService) loadOrder(ctx context.Context, id string) (entities.Order, error) {
	if err := validID(id, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	if data, ok := s.cache.Get(orderCacheKey(id)); ok {
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		s.logger.WarnContext(ctx, "failed to unmarshal cached order", slog.String("order_id", id))
	}

	err := utils.Retry(ctx, s.opts.retry, func() error {
		var err error
		order, err = s.store.GetOrder(ctx, id)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(orderCacheKey(id), data)
	}
	return order, nil
}

func (s *orderService) canView(ctx context.Context, actor entities.Actor, order entities.Order) error {
	if actor.OwnsOrder(order) {
		return nil
	}
	if actor.Is(entities.RoleDriver) {
		ok, err := s.store.HasAssignment(ctx, order.ID, actor.ID)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("%w: order is not visible to this actor", entities.ErrForbidden)
}

func (s *orderService) ListOrders(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) ([]entities.Order, error) {
	f := entities.OrderFilter{Status: filter.Status, Limit: filter.Limit}
	switch actor.Role {
	case entities.RoleCustomer:
		f.CustomerID = actor.ID
	case entities.RoleRestaurant:
		if actor.RestaurantID == "" {
			return nil, fmt.Errorf("%w: restaurant is not bound to the actor", entities.ErrForbidden)
		}
		f.RestaurantID = actor.RestaurantID
	case entities.RoleDriver:
		f.DriverID = actor.ID
	case entities.RoleAdmin:
		f.CustomerID = filter.CustomerID
		f.RestaurantID = filter.RestaurantID
		f.DriverID = filter.DriverID
	default:
		return nil, entities.ErrForbidden
	}

	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	f.Limit = min(f.Limit, maxListLimit)

	return s.store.ListOrders(ctx, f)
}

func (s *orderService) CancelOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	return s.UpdateStatus(ctx, actor, id, entities.StatusCancelled)
}

func (s *orderService) UpdateStatus(ctx context.Context, actor entities.Actor, id string, to entities.OrderStatus) (entities.Order, error) {
	if err := validID(id, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if !order.Status.CanTransition(to) {
		if order.Status.IsTerminal() {
			return entities.Order{}, fmt.Errorf("%w: order is already %s", entities.ErrInvalidTransition, order.Status)
		}
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, to)
	}
	owner, _ := order.Status.EdgeOwner(to)
	if err := authorizeEdge(actor, order, owner); err != nil {
		return entities.Order{}, err
	}

	var driverID string
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.store.UpdateOrderStatus(ctx, id, []entities.OrderStatus{order.Status}, to)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: order status changed concurrently", entities.ErrInvalidTransition)
		}

		// отмена назначенного заказа освобождает курьера
		if to == entities.StatusCancelled && order.Status == entities.StatusAssigned {
			a, err := s.store.ActiveAssignment(ctx, id)
			if errors.Is(err, entities.ErrAssignmentNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			ok, err := s.store.TransitionAssignment(ctx, a.ID, entities.AssignmentAssigned, entities.AssignmentRejected, entities.RejectedOrderCanceled)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: assignment is no longer assigned", entities.ErrInvalidTransition)
			}
			driverID = a.DriverID
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	s.cache.Delete(orderCacheKey(id))

	updated, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", id),
		slog.String("from", string(order.Status)),
		slog.String("to", string(to)),
	)
	e := orderEvent(entities.EventOrderStatusChanged, updated)
	e.DriverID = driverID
	s.events.notify(ctx, e)

	return updated, nil
}

func authorizeEdge(actor entities.Actor, order entities.Order, owner entities.EdgeOwner) error {
	switch owner {
	case entities.OwnerRestaurant:
		if actor.Is(entities.RoleAdmin) || (actor.Is(entities.RoleRestaurant) && actor.OwnsOrder(order)) {
			return nil
		}
	case entities.OwnerCanceller:
		if actor.OwnsOrder(order) {
			return nil
		}
	case entities.OwnerDispatch:
		return fmt.Errorf("%w: dispatch transitions go through assignments", entities.ErrForbidden)
	}
	return fmt.Errorf("%w: actor cannot drive this transition", entities.ErrForbidden)
}

// ReverseGeocode определяет адрес по точке на карте для формы оформления.
func (s *orderService) ReverseGeocode(ctx context.Context, coords entities.Coordinates) (entities.Address, error) {
	if err := validateCoordinates(coords); err != nil {
		return entities.Address{}, err
	}
	point, err := s.geocoder.Reverse(ctx, coords)
	if err != nil {
		return entities.Address{}, err
	}
	return entities.Address{Text: point.FormattedAddress, City: point.City, Coordinates: point.Coordinates}, nil
}
