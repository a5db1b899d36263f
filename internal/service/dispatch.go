package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/config"
	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/fee"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/trm"
	"github.com/google/uuid"
)

// staleBatch ограничивает число назначений, истекающих за один проход.
const staleBatch = 100

type dispatchService struct {
	logger    *slog.Logger
	txManager trm.Manager
	store     Store
	cache     Cache
	live      LiveStore
	events    notifier
	fees      fee.Calculator
	cfg       config.Dispatch
	opts      options
}

func NewDispatchService(
	logger *slog.Logger,
	txManager trm.Manager,
	store Store,
	cache Cache,
	live LiveStore,
	events Notifier,
	fees fee.Calculator,
	cfg config.Dispatch,
	opts ...Option,
) *dispatchService {
	o := newOptions(opts)
	logger = logger.With(slog.String("service", "dispatch"))
	return &dispatchService{
		logger:    logger,
		txManager: txManager,
		store:     store,
		cache:     cache,
		live:      live,
		events:    notifier{logger: logger, next: events, now: o.now},
		fees:      fees,
		cfg:       cfg,
		opts:      o,
	}
}

// ListClaimable возвращает пул заказов, доступных курьеру в его городе.
func (s *dispatchService) ListClaimable(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !actor.Is(entities.RoleDriver) {
		return nil, fmt.Errorf("%w: only drivers see the claimable pool", entities.ErrForbidden)
	}

	driver, err := s.store.GetDriver(ctx, actor.ID)
	if errors.Is(err, entities.ErrDriverNotFound) {
		return []entities.Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !driver.Available {
		return []entities.Order{}, nil
	}

	return s.store.ListClaimable(ctx, driver.City, s.cfg.ClaimableLimit)
}

func (s *dispatchService) Claim(ctx context.Context, actor entities.Actor, orderID string) (entities.Assignment, error) {
	if !actor.Is(entities.RoleDriver) {
		return entities.Assignment{}, fmt.Errorf("%w: only drivers can claim orders", entities.ErrForbidden)
	}
	if err := validID(orderID, entities.ErrOrderNotFound); err != nil {
		return entities.Assignment{}, err
	}

	driver, err := s.store.GetDriver(ctx, actor.ID)
	if errors.Is(err, entities.ErrDriverNotFound) {
		return entities.Assignment{}, fmt.Errorf("%w: driver is not registered", entities.ErrForbidden)
	}
	if err != nil {
		return entities.Assignment{}, err
	}
	if !driver.Available {
		return entities.Assignment{}, fmt.Errorf("%w: driver is not available", entities.ErrForbidden)
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if !strings.EqualFold(strings.TrimSpace(order.DeliveryAddress.City), strings.TrimSpace(driver.City)) {
		return entities.Assignment{}, fmt.Errorf("%w: order is outside the driver's city", entities.ErrForbidden)
	}
	if !order.Status.IsClaimable() {
		if order.Status.IsClaimed() {
			return entities.Assignment{}, entities.ErrAlreadyClaimed
		}
		return entities.Assignment{}, fmt.Errorf("%w: order is %s", entities.ErrInvalidTransition, order.Status)
	}

	a := entities.Assignment{
		ID:             uuid.NewString(),
		OrderID:        order.ID,
		DriverID:       driver.ID,
		Status:         entities.AssignmentAssigned,
		PickupAddress:  order.Restaurant.Address,
		DropoffAddress: order.DeliveryAddress,
		DriverEarnings: s.fees.DriverEarnings(order.DeliveryFee),
		AssignedAt:     s.opts.now(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.store.UpdateOrderStatus(ctx, order.ID, entities.ClaimableStatuses, entities.StatusAssigned)
		if err != nil {
			return err
		}
		if !ok {
			current, err := s.store.GetOrder(ctx, order.ID)
			if err != nil {
				return err
			}
			if current.Status.IsClaimed() {
				return entities.ErrAlreadyClaimed
			}
			return fmt.Errorf("%w: order no longer available", entities.ErrInvalidTransition)
		}
		return s.store.CreateAssignment(ctx, a)
	})
	if err != nil {
		return entities.Assignment{}, err
	}
	s.cache.Delete(orderCacheKey(order.ID))

	s.logger.InfoContext(ctx, "order claimed",
		slog.String("order_id", order.ID),
		slog.String("driver_id", driver.ID),
	)
	order.Status = entities.StatusAssigned
	s.events.notify(ctx, assignmentEvent(entities.EventAssignmentClaimed, order, a))

	return a, nil
}

// Reject возвращает заказ в пул.
func (s *dispatchService) Reject(ctx context.Context, actor entities.Actor, assignmentID string) (entities.Assignment, error) {
	a, err := s.ownAssignment(ctx, actor, assignmentID)
	if err != nil {
		return entities.Assignment{}, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.release(ctx, a, entities.RejectedByDriver)
	})
	if err != nil {
		return entities.Assignment{}, err
	}

	return s.afterTransition(ctx, a.ID, entities.EventAssignmentRejected)
}

func (s *dispatchService) MarkPickedUp(ctx context.Context, actor entities.Actor, assignmentID string, loc *entities.Coordinates) (entities.Assignment, error) {
	a, err := s.ownAssignment(ctx, actor, assignmentID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if loc != nil {
		if err := validateCoordinates(*loc); err != nil {
			return entities.Assignment{}, err
		}
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.advance(ctx, a, entities.AssignmentAssigned, entities.AssignmentPickedUp, entities.StatusAssigned, entities.StatusPickedUp); err != nil {
			return err
		}
		if loc != nil {
			return s.store.SetDriverLocation(ctx, a.OrderID, loc)
		}
		return nil
	})
	if err != nil {
		return entities.Assignment{}, err
	}

	if loc != nil {
		live := entities.DriverLocation{OrderID: a.OrderID, DriverID: a.DriverID, Coordinates: *loc, UpdatedAt: s.opts.now()}
		if err := s.live.SaveLocation(ctx, live); err != nil {
			s.logger.WarnContext(ctx, "failed to store live location", slog.String("order_id", a.OrderID), slog.Any("error", err))
		}
	}

	return s.afterTransition(ctx, a.ID, entities.EventAssignmentPickedUp)
}

func (s *dispatchService) MarkDelivered(ctx context.Context, actor entities.Actor, assignmentID string) (entities.Assignment, error) {
	a, err := s.ownAssignment(ctx, actor, assignmentID)
	if err != nil {
		return entities.Assignment{}, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.advance(ctx, a, entities.AssignmentPickedUp, entities.AssignmentDelivered, entities.StatusPickedUp, entities.StatusDelivered); err != nil {
			return err
		}
		if err := s.store.SetDriverLocation(ctx, a.OrderID, nil); err != nil {
			return err
		}
		return s.store.AddDelivery(ctx, a.DriverID, a.DriverEarnings)
	})
	if err != nil {
		return entities.Assignment{}, err
	}

	if err := s.live.ClearLocation(ctx, a.OrderID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear live location", slog.String("order_id", a.OrderID), slog.Any("error", err))
	}

	return s.afterTransition(ctx, a.ID, entities.EventAssignmentDelivered)
}

func (s *dispatchService) GetAssignment(ctx context.Context, actor entities.Actor, id string) (entities.Assignment, error) {
	if err := validID(id, entities.ErrAssignmentNotFound); err != nil {
		return entities.Assignment{}, err
	}
	a, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		return entities.Assignment{}, err
	}
	if actor.Is(entities.RoleDriver) && a.DriverID == actor.ID {
		return a, nil
	}

	order, err := s.store.GetOrder(ctx, a.OrderID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if !actor.OwnsOrder(order) {
		return entities.Assignment{}, fmt.Errorf("%w: assignment is not visible to this actor", entities.ErrForbidden)
	}
	return a, nil
}

// ExpireStaleAssignments освобождает назначения, по которым заказ так и не забрали.
func (s *dispatchService) ExpireStaleAssignments(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.opts.now().Add(-olderThan)

	var expired []entities.Assignment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		stale, err := s.store.LockStaleAssignments(ctx, cutoff, staleBatch)
		if err != nil {
			return err
		}
		for _, a := range stale {
			if err := s.release(ctx, a, entities.RejectedOnTimeout); err != nil {
				// ничего не записано, назначение освободит отмена заказа
				if errors.Is(err, errOrderMoved) {
					continue
				}
				return err
			}
			expired = append(expired, a)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to expire assignments: %w", err)
	}

	for _, a := range expired {
		s.logger.InfoContext(ctx, "assignment expired",
			slog.String("assignment_id", a.ID),
			slog.String("order_id", a.OrderID),
		)
		if _, err := s.afterTransition(ctx, a.ID, entities.EventAssignmentRejected); err != nil {
			s.logger.WarnContext(ctx, "failed to reload expired assignment", slog.String("assignment_id", a.ID), slog.Any("error", err))
		}
	}
	return len(expired), nil
}

func (s *dispatchService) UpsertDriverProfile(ctx context.Context, actor entities.Actor, city string, available bool) (entities.Driver, error) {
	if !actor.Is(entities.RoleDriver) {
		return entities.Driver{}, fmt.Errorf("%w: only drivers have a profile", entities.ErrForbidden)
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return entities.Driver{}, entities.Validationf("city is required")
	}
	return s.store.UpsertDriver(ctx, entities.Driver{
		ID:        actor.ID,
		City:      city,
		Available: available,
		UpdatedAt: s.opts.now(),
	})
}

func (s *dispatchService) GetDriverProfile(ctx context.Context, actor entities.Actor) (entities.Driver, error) {
	if !actor.Is(entities.RoleDriver) {
		return entities.Driver{}, fmt.Errorf("%w: only drivers have a profile", entities.ErrForbidden)
	}
	return s.store.GetDriver(ctx, actor.ID)
}

func (s *dispatchService) ownAssignment(ctx context.Context, actor entities.Actor, id string) (entities.Assignment, error) {
	if err := validID(id, entities.ErrAssignmentNotFound); err != nil {
		return entities.Assignment{}, err
	}
	a, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		return entities.Assignment{}, err
	}
	if !actor.Is(entities.RoleDriver) || a.DriverID != actor.ID {
		return entities.Assignment{}, fmt.Errorf("%w: assignment belongs to another driver", entities.ErrForbidden)
	}
	return a, nil
}

// errOrderMoved означает, что заказ ушёл из ожидаемого статуса раньше,
// чем назначение было тронуто.
var errOrderMoved = errors.New("order moved on")

// release отклоняет назначение и возвращает заказ в ready.
// Сначала блокируется строка заказа, как в Claim и при отмене.
func (s *dispatchService) release(ctx context.Context, a entities.Assignment, reason entities.RejectionReason) error {
	ok, err := s.store.UpdateOrderStatus(ctx, a.OrderID, []entities.OrderStatus{entities.StatusAssigned}, entities.StatusReady)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %w: order is no longer assigned", entities.ErrInvalidTransition, errOrderMoved)
	}
	ok, err = s.store.TransitionAssignment(ctx, a.ID, entities.AssignmentAssigned, entities.AssignmentRejected, reason)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: assignment is no longer assigned", entities.ErrInvalidTransition)
	}
	return nil
}

// advance продвигает заказ, а затем его назначение.
func (s *dispatchService) advance(ctx context.Context, a entities.Assignment, from, to entities.AssignmentStatus, orderFrom, orderTo entities.OrderStatus) error {
	ok, err := s.store.UpdateOrderStatus(ctx, a.OrderID, []entities.OrderStatus{orderFrom}, orderTo)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: order is not %s", entities.ErrInvalidTransition, orderFrom)
	}
	ok, err = s.store.TransitionAssignment(ctx, a.ID, from, to, "")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: assignment is not %s", entities.ErrInvalidTransition, from)
	}
	return nil
}

// afterTransition сбрасывает заказ в кэше и публикует изменение.
func (s *dispatchService) afterTransition(ctx context.Context, assignmentID string, t entities.EventType) (entities.Assignment, error) {
	a, err := s.store.GetAssignment(ctx, assignmentID)
	if err != nil {
		return entities.Assignment{}, err
	}
	s.cache.Delete(orderCacheKey(a.OrderID))

	order, err := s.store.GetOrder(ctx, a.OrderID)
	if err != nil {
		return entities.Assignment{}, err
	}
	s.events.notify(ctx, assignmentEvent(t, order, a))
	return a, nil
}

func assignmentEvent(t entities.EventType, o entities.Order, a entities.Assignment) entities.Event {
	e := orderEvent(t, o)
	e.DriverID = a.DriverID
	return e
}

func validateCoordinates(c entities.Coordinates) error {
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return entities.Validationf("coordinates out of range")
	}
	return nil
}
