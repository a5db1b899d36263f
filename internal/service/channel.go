package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/food-dispatch/internal/config"
	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/trm"
	"github.com/google/uuid"
)

const (
	maxMessageLength   = 2000
	defaultMessageList = 50
	maxMessageList     = 200
)

type MessageInput struct {
	ID      string
	Content string
}

type channelService struct {
	logger    *slog.Logger
	txManager trm.Manager
	store     Store
	cache     Cache
	live      LiveStore
	events    notifier
	cfg       config.Channel
	opts      options
}

func NewChannelService(
	logger *slog.Logger,
	txManager trm.Manager,
	store Store,
	cache Cache,
	live LiveStore,
	events Notifier,
	cfg config.Channel,
	opts ...Option,
) *channelService {
	o := newOptions(opts)
	logger = logger.With(slog.String("service", "channel"))
	return &channelService{
		logger:    logger,
		txManager: txManager,
		store:     store,
		cache:     cache,
		live:      live,
		events:    notifier{logger: logger, next: events, now: o.now},
		cfg:       cfg,
		opts:      o,
	}
}

// PushLocation сохраняет позицию курьера и возвращает интервал до следующей отправки.
func (s *channelService) PushLocation(ctx context.Context, actor entities.Actor, orderID string, coords entities.Coordinates) (time.Duration, error) {
	if err := validateCoordinates(coords); err != nil {
		return 0, err
	}
	order, a, err := s.orderWithDriver(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if a == nil || !actor.Is(entities.RoleDriver) || a.DriverID != actor.ID {
		return 0, fmt.Errorf("%w: only the assigned driver can share location", entities.ErrForbidden)
	}
	if order.Status != entities.StatusPickedUp {
		return 0, fmt.Errorf("%w: location is shared only on the way", entities.ErrInvalidTransition)
	}

	if err := s.store.SetDriverLocation(ctx, orderID, &coords); err != nil {
		return 0, err
	}
	s.cache.Delete(orderCacheKey(orderID))

	loc := entities.DriverLocation{OrderID: orderID, DriverID: actor.ID, Coordinates: coords, UpdatedAt: s.opts.now()}
	if err := s.live.SaveLocation(ctx, loc); err != nil {
		s.logger.WarnContext(ctx, "failed to store live location", slog.String("order_id", orderID), slog.Any("error", err))
	}

	s.events.notify(ctx, assignmentEvent(entities.EventLocationUpdated, order, *a))
	return s.cfg.LocationInterval, nil
}

// GetLocation возвращает последнюю позицию курьера или nil, если она не отслеживается.
func (s *channelService) GetLocation(ctx context.Context, actor entities.Actor, orderID string) (*entities.DriverLocation, error) {
	order, a, err := s.orderWithDriver(ctx, orderID)
	if err != nil {
		return nil, err
	}

	allowed := actor.Is(entities.RoleAdmin) ||
		(actor.Is(entities.RoleCustomer) && order.CustomerID == actor.ID) ||
		(a != nil && actor.Is(entities.RoleDriver) && a.DriverID == actor.ID)
	if !allowed {
		return nil, fmt.Errorf("%w: location is not visible to this actor", entities.ErrForbidden)
	}
	if order.Status != entities.StatusPickedUp || a == nil {
		return nil, nil
	}

	loc, ok, err := s.live.GetLocation(ctx, orderID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read live location", slog.String("order_id", orderID), slog.Any("error", err))
	}
	if ok {
		return &loc, nil
	}

	// последняя известная точка из postgres
	if order.DriverLocation == nil {
		return nil, nil
	}
	return &entities.DriverLocation{
		OrderID:     orderID,
		DriverID:    a.DriverID,
		Coordinates: *order.DriverLocation,
		UpdatedAt:   order.UpdatedAt,
	}, nil
}

// SendMessage сохраняет сообщение чата. false означает, что id уже был сохранён.
// Метки времени сообщений одного заказа строго растут в порядке коммитов,
// поэтому курсор по created_at не пропускает сообщения.
func (s *channelService) SendMessage(ctx context.Context, actor entities.Actor, orderID string, in MessageInput) (entities.Message, bool, error) {
	content := strings.TrimSpace(in.Content)
	if n := utf8.RuneCountInString(content); n == 0 || n > maxMessageLength {
		return entities.Message{}, false, entities.Validationf("message must be 1..%d characters", maxMessageLength)
	}
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return entities.Message{}, false, entities.Validationf("message id must be a uuid")
	}

	order, a, err := s.orderWithDriver(ctx, orderID)
	if err != nil {
		return entities.Message{}, false, err
	}
	role, ok := senderRole(actor, order, a)
	if !ok {
		return entities.Message{}, false, fmt.Errorf("%w: only the customer and the assigned driver can chat", entities.ErrForbidden)
	}

	msg := entities.Message{
		ID:         id,
		OrderID:    orderID,
		SenderRole: role,
		SenderID:   actor.ID,
		Content:    content,
	}

	// время сообщения назначает хранилище, вставки по одному заказу идут по очереди
	var (
		stored   entities.Message
		inserted bool
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = s.store.InsertMessage(ctx, msg)
		if err != nil {
			return err
		}
		stored, err = s.store.GetMessage(ctx, id)
		return err
	})
	if err != nil {
		return entities.Message{}, false, err
	}
	if !inserted {
		if stored.OrderID != orderID || stored.SenderID != actor.ID {
			return entities.Message{}, false, fmt.Errorf("%w: message id already taken", entities.ErrForbidden)
		}
		return stored, false, nil
	}

	e := orderEvent(entities.EventMessageCreated, order)
	if a != nil {
		e.DriverID = a.DriverID
	}
	s.events.notify(ctx, e)
	return stored, true, nil
}

func (s *channelService) ListMessages(ctx context.Context, actor entities.Actor, orderID string, after *time.Time, limit int) ([]entities.Message, error) {
	order, a, err := s.orderWithDriver(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if _, ok := senderRole(actor, order, a); !ok && !actor.Is(entities.RoleAdmin) {
		return nil, fmt.Errorf("%w: chat is not visible to this actor", entities.ErrForbidden)
	}

	if limit <= 0 {
		limit = defaultMessageList
	}
	return s.store.ListMessages(ctx, orderID, after, min(limit, maxMessageList))
}

// RequestCall просит назначенного курьера перезвонить клиенту.
func (s *channelService) RequestCall(ctx context.Context, actor entities.Actor, orderID string) (entities.CallSignal, error) {
	order, a, err := s.orderWithDriver(ctx, orderID)
	if err != nil {
		return entities.CallSignal{}, err
	}
	if !actor.Is(entities.RoleCustomer) || order.CustomerID != actor.ID {
		return entities.CallSignal{}, fmt.Errorf("%w: only the customer can request a call", entities.ErrForbidden)
	}
	if a == nil || a.Status == entities.AssignmentDelivered {
		return entities.CallSignal{}, fmt.Errorf("%w: no driver is assigned", entities.ErrInvalidTransition)
	}

	now := s.opts.now()
	call := entities.CallSignal{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		DriverID:      a.DriverID,
		CustomerID:    actor.ID,
		CustomerPhone: order.Contact.Phone,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.cfg.CallSignalTTL),
	}
	if err := s.live.SaveCall(ctx, call); err != nil {
		return entities.CallSignal{}, fmt.Errorf("%w: failed to store call signal: %w", entities.ErrUpstreamUnavailable, err)
	}

	s.events.notify(ctx, assignmentEvent(entities.EventCallRequested, order, *a))
	return call, nil
}

func (s *channelService) PendingCalls(ctx context.Context, actor entities.Actor) ([]entities.CallSignal, error) {
	if !actor.Is(entities.RoleDriver) {
		return nil, fmt.Errorf("%w: only drivers receive calls", entities.ErrForbidden)
	}
	calls, err := s.live.PendingCalls(ctx, actor.ID, s.opts.now())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read call signals: %w", entities.ErrUpstreamUnavailable, err)
	}
	return calls, nil
}

func (s *channelService) DismissCall(ctx context.Context, actor entities.Actor, callID string) error {
	if !actor.Is(entities.RoleDriver) {
		return fmt.Errorf("%w: only drivers receive calls", entities.ErrForbidden)
	}
	return s.live.DeleteCall(ctx, actor.ID, callID)
}

// orderWithDriver загружает заказ и его активное назначение, если оно есть.
func (s *channelService) orderWithDriver(ctx context.Context, orderID string) (entities.Order, *entities.Assignment, error) {
	if err := validID(orderID, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, nil, err
	}
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	a, err := s.store.ActiveAssignment(ctx, orderID)
	if errors.Is(err, entities.ErrAssignmentNotFound) {
		return order, nil, nil
	}
	if err != nil {
		return entities.Order{}, nil, err
	}
	return order, &a, nil
}

func senderRole(actor entities.Actor, order entities.Order, a *entities.Assignment) (entities.SenderRole, bool) {
	switch {
	case actor.Is(entities.RoleCustomer) && order.CustomerID == actor.ID:
		return entities.SenderCustomer, true
	case actor.Is(entities.RoleDriver) && a != nil && a.DriverID == actor.ID:
		return entities.SenderDriver, true
	}
	return "", false
}
