package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/geocode"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	InsertOrder(ctx context.Context, o entities.Order) (bool, error)
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error

	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	ListClaimable(ctx context.Context, city string, limit int) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, from []entities.OrderStatus, to entities.OrderStatus) (bool, error)
	SetDriverLocation(ctx context.Context, id string, loc *entities.Coordinates) error
}

type AssignmentRepo interface {
	CreateAssignment(ctx context.Context, a entities.Assignment) error
	GetAssignment(ctx context.Context, id string) (entities.Assignment, error)
	ActiveAssignment(ctx context.Context, orderID string) (entities.Assignment, error)
	HasAssignment(ctx context.Context, orderID, driverID string) (bool, error)
	TransitionAssignment(ctx context.Context, id string, from, to entities.AssignmentStatus, reason entities.RejectionReason) (bool, error)
	LockStaleAssignments(ctx context.Context, assignedBefore time.Time, limit int) ([]entities.Assignment, error)
}

type DriverRepo interface {
	GetDriver(ctx context.Context, id string) (entities.Driver, error)
	UpsertDriver(ctx context.Context, d entities.Driver) (entities.Driver, error)
	AddDelivery(ctx context.Context, driverID string, earnings float64) error
}

type PromoRepo interface {
	GetPromo(ctx context.Context, code string) (entities.Promo, error)
}

type MessageRepo interface {
	InsertMessage(ctx context.Context, m entities.Message) (bool, error)
	GetMessage(ctx context.Context, id string) (entities.Message, error)
	ListMessages(ctx context.Context, orderID string, after *time.Time, limit int) ([]entities.Message, error)
}

// Store - долговременное состояние заказов, назначений и чата.
type Store interface {
	OrderRepo
	AssignmentRepo
	DriverRepo
	PromoRepo
	MessageRepo
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type Geocoder interface {
	Forward(ctx context.Context, address, city string) (geocode.GeoPoint, error)
	Reverse(ctx context.Context, coords entities.Coordinates) (geocode.GeoPoint, error)
	CityCenter(city string) (entities.Coordinates, bool)
}

// Buffer принимает заказы, пока хранилище недоступно.
type Buffer interface {
	Enqueue(ctx context.Context, o entities.Order) error
}

type Notifier interface {
	Notify(ctx context.Context, e entities.Event) error
}

// LiveStore хранит эфемерное состояние канала.
type LiveStore interface {
	SaveLocation(ctx context.Context, loc entities.DriverLocation) error
	GetLocation(ctx context.Context, orderID string) (entities.DriverLocation, bool, error)
	ClearLocation(ctx context.Context, orderID string) error
	SaveCall(ctx context.Context, c entities.CallSignal) error
	PendingCalls(ctx context.Context, driverID string, now time.Time) ([]entities.CallSignal, error)
	DeleteCall(ctx context.Context, driverID, callID string) error
}

type options struct {
	now   func() time.Time
	retry utils.RetryConfig
}

type Option func(*options)

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithRetry(cfg utils.RetryConfig) Option {
	return func(o *options) { o.retry = cfg }
}

func newOptions(opts []Option) options {
	o := options{
		now: time.Now,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func orderCacheKey(id string) string {
	return "order:" + id
}

// validID отсекает не-uuid идентификаторы до запроса в postgres.
func validID(id string, notFound error) error {
	if _, err := uuid.Parse(id); err != nil {
		return notFound
	}
	return nil
}

// storeUnavailable отличает недоступность хранилища от отказа в записи.
// Коды класса 08 и 57P0x postgres означают потерю соединения.
func storeUnavailable(err error) bool {
	if errors.Is(err, entities.ErrStoreUnavailable) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		code := pgErr.SQLState()
		return strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57P0")
	}
	return false
}

func orderEvent(t entities.EventType, o entities.Order) entities.Event {
	return entities.Event{
		Type:         t,
		OrderID:      o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		City:         o.DeliveryAddress.City,
		Status:       string(o.Status),
	}
}

// notifier оборачивает Notifier: ошибка публикации не проваливает команду.
type notifier struct {
	logger *slog.Logger
	next   Notifier
	now    func() time.Time
}

func (n notifier) notify(ctx context.Context, e entities.Event) {
	e.ID = uuid.NewString()
	e.OccurredAt = n.now()
	if err := n.next.Notify(ctx, e); err != nil {
		n.logger.WarnContext(ctx, "failed to publish event",
			slog.String("type", string(e.Type)),
			slog.String("order_id", e.OrderID),
			slog.Any("error", err),
		)
	}
}
