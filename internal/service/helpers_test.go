package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"slices"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/geocode"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/trm"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
)

var fastRetry = utils.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passTx выполняет callback на месте, memStore сам сериализует вызовы.
type passTx struct{}

func (passTx) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return ctx, nil, errors.New("not supported")
}

func (passTx) Do(ctx context.Context, cb func(ctx context.Context) error) error {
	return cb(ctx)
}

// memStore - потокобезопасный Store в памяти с той же CAS-семантикой, что и postgres.
type memStore struct {
	mu          sync.Mutex
	orders      map[string]entities.Order
	assignments map[string]entities.Assignment
	drivers     map[string]entities.Driver
	promos      map[string]entities.Promo
	messages    map[string]entities.Message

	// failOrders роняет каждую запись заказа, как при недоступном хранилище
	failOrders bool
}

func newMemStore() *memStore {
	return &memStore{
		orders:      make(map[string]entities.Order),
		assignments: make(map[string]entities.Assignment),
		drivers:     make(map[string]entities.Driver),
		promos:      make(map[string]entities.Promo),
		messages:    make(map[string]entities.Message),
	}
}

var errStoreDown = &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

func (m *memStore) setFailing(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOrders = v
}

func (m *memStore) InsertOrder(_ context.Context, o entities.Order) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOrders {
		return false, errStoreDown
	}
	if _, ok := m.orders[o.ID]; ok {
		return false, nil
	}
	o.Buffered = false
	m.orders[o.ID] = o
	return true, nil
}

func (m *memStore) SaveItems(_ context.Context, orderID string, items []entities.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.orders[orderID]
	o.Items = slices.Clone(items)
	m.orders[orderID] = o
	return nil
}

func (m *memStore) GetOrder(_ context.Context, id string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOrders {
		return entities.Order{}, errStoreDown
	}
	o, ok := m.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (m *memStore) ListOrders(_ context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []entities.Order
	for _, o := range m.orders {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.RestaurantID != "" && o.RestaurantID != f.RestaurantID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.DriverID != "" && !m.hasAssignment(o.ID, f.DriverID) {
			continue
		}
		res = append(res, o)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	if len(res) > f.Limit {
		res = res[:f.Limit]
	}
	return res, nil
}

func (m *memStore) ListClaimable(_ context.Context, city string, limit int) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []entities.Order
	for _, o := range m.orders {
		if !o.Status.IsClaimable() || !strings.EqualFold(o.DeliveryAddress.City, city) {
			continue
		}
		if _, ok := m.active(o.ID); ok {
			continue
		}
		res = append(res, o)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (m *memStore) UpdateOrderStatus(_ context.Context, id string, from []entities.OrderStatus, to entities.OrderStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || !slices.Contains(from, o.Status) {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	m.orders[id] = o
	return true, nil
}

func (m *memStore) SetDriverLocation(_ context.Context, id string, loc *entities.Coordinates) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.orders[id]
	o.DriverLocation = loc
	m.orders[id] = o
	return nil
}

func (m *memStore) CreateAssignment(_ context.Context, a entities.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.active(a.OrderID); ok {
		return entities.ErrAlreadyClaimed
	}
	m.assignments[a.ID] = a
	return nil
}

func (m *memStore) GetAssignment(_ context.Context, id string) (entities.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assignments[id]
	if !ok {
		return entities.Assignment{}, entities.ErrAssignmentNotFound
	}
	return a, nil
}

func (m *memStore) ActiveAssignment(_ context.Context, orderID string) (entities.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.active(orderID)
	if !ok {
		return entities.Assignment{}, entities.ErrAssignmentNotFound
	}
	return a, nil
}

func (m *memStore) HasAssignment(_ context.Context, orderID, driverID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasAssignment(orderID, driverID), nil
}

func (m *memStore) TransitionAssignment(_ context.Context, id string, from, to entities.AssignmentStatus, reason entities.RejectionReason) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assignments[id]
	if !ok || a.Status != from {
		return false, nil
	}
	now := time.Now()
	a.Status = to
	switch to {
	case entities.AssignmentPickedUp:
		a.PickedUpAt = &now
	case entities.AssignmentDelivered:
		a.DeliveredAt = &now
	case entities.AssignmentRejected:
		a.RejectedAt = &now
		a.RejectionReason = reason
	}
	m.assignments[id] = a
	return true, nil
}

func (m *memStore) LockStaleAssignments(_ context.Context, assignedBefore time.Time, limit int) ([]entities.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []entities.Assignment
	for _, a := range m.assignments {
		if a.Status == entities.AssignmentAssigned && a.AssignedAt.Before(assignedBefore) &&
			m.orders[a.OrderID].Status == entities.StatusAssigned {
			res = append(res, a)
		}
	}
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (m *memStore) GetDriver(_ context.Context, id string) (entities.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[id]
	if !ok {
		return entities.Driver{}, entities.ErrDriverNotFound
	}
	return d, nil
}

func (m *memStore) UpsertDriver(_ context.Context, d entities.Driver) (entities.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.drivers[d.ID]; ok {
		d.CompletedDeliveries = cur.CompletedDeliveries
		d.TotalEarnings = cur.TotalEarnings
	}
	m.drivers[d.ID] = d
	return d, nil
}

func (m *memStore) AddDelivery(_ context.Context, driverID string, earnings float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drivers[driverID]
	if !ok {
		return entities.ErrDriverNotFound
	}
	d.CompletedDeliveries++
	d.TotalEarnings += earnings
	m.drivers[driverID] = d
	return nil
}

func (m *memStore) GetPromo(_ context.Context, code string) (entities.Promo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.promos[code]
	if !ok {
		return entities.Promo{}, entities.ErrPromoNotFound
	}
	return p, nil
}

func (m *memStore) InsertMessage(_ context.Context, msg entities.Message) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.messages[msg.ID]; ok {
		return false, nil
	}
	// как в postgres: время назначает хранилище и оно строго растёт по заказу
	msg.CreatedAt = time.Now().UTC()
	for _, other := range m.messages {
		if other.OrderID == msg.OrderID && !msg.CreatedAt.After(other.CreatedAt) {
			msg.CreatedAt = other.CreatedAt.Add(time.Microsecond)
		}
	}
	m.messages[msg.ID] = msg
	return true, nil
}

func (m *memStore) GetMessage(_ context.Context, id string) (entities.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[id]
	if !ok {
		return entities.Message{}, entities.ErrMessageNotFound
	}
	return msg, nil
}

func (m *memStore) ListMessages(_ context.Context, orderID string, after *time.Time, limit int) ([]entities.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []entities.Message
	for _, msg := range m.messages {
		if msg.OrderID != orderID || (after != nil && !msg.CreatedAt.After(*after)) {
			continue
		}
		res = append(res, msg)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID < res[j].ID
		}
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (m *memStore) active(orderID string) (entities.Assignment, bool) {
	for _, a := range m.assignments {
		if a.OrderID == orderID && a.Status.IsActive() {
			return a, true
		}
	}
	return entities.Assignment{}, false
}

func (m *memStore) hasAssignment(orderID, driverID string) bool {
	for _, a := range m.assignments {
		if a.OrderID == orderID && a.DriverID == driverID {
			return true
		}
	}
	return false
}

func (m *memStore) activeCount(orderID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int
	for _, a := range m.assignments {
		if a.OrderID == orderID && a.Status.IsActive() {
			n++
		}
	}
	return n
}

func (m *memStore) putOrder(o entities.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
}

func (m *memStore) putDriver(d entities.Driver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[d.ID] = d
}

func (m *memStore) patchAssignment(id string, fn func(a *entities.Assignment)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.assignments[id]
	fn(&a)
	m.assignments[id] = a
}

// recorder собирает опубликованные события.
type recorder struct {
	mu     sync.Mutex
	events []entities.Event
}

func (r *recorder) Notify(_ context.Context, e entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) count(t entities.EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// fixedGeocoder возвращает одну и ту же точку для любого адреса или ошибку.
type fixedGeocoder struct {
	point  *entities.Coordinates
	center entities.Coordinates
}

func (g fixedGeocoder) Forward(context.Context, string, string) (geocode.GeoPoint, error) {
	if g.point == nil {
		c := g.center
		return geocode.GeoPoint{Coordinates: &c, Fallback: true}, entities.ErrUpstreamUnavailable
	}
	p := *g.point
	return geocode.GeoPoint{Coordinates: &p}, nil
}

func (g fixedGeocoder) Reverse(_ context.Context, c entities.Coordinates) (geocode.GeoPoint, error) {
	return geocode.GeoPoint{Coordinates: &c, FormattedAddress: "Abay Ave 1", City: "Almaty"}, nil
}

func (g fixedGeocoder) CityCenter(string) (entities.Coordinates, bool) {
	return g.center, true
}

// memBuffer - Buffer в памяти.
type memBuffer struct {
	mu     sync.Mutex
	orders map[string]entities.Order
}

func (b *memBuffer) Enqueue(_ context.Context, o entities.Order) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.orders == nil {
		b.orders = make(map[string]entities.Order)
	}
	if _, ok := b.orders[o.ID]; !ok {
		o.Buffered = true
		b.orders[o.ID] = o
	}
	return nil
}

func newTestOrder(t *testing.T, id string, status entities.OrderStatus) entities.Order {
	t.Helper()
	now := time.Now()
	return entities.Order{
		ID:           id,
		CustomerID:   "customer-1",
		RestaurantID: "restaurant-1",
		Status:       status,
		Items:        []entities.LineItem{{ProductID: "p1", Name: "Plov", UnitPrice: 50, Quantity: 2}},
		Subtotal:     100,
		DeliveryFee:  15,
		Total:        115,
		DeliveryAddress: entities.Address{
			Text: "Abay Ave 10", City: "Almaty",
			Coordinates: &entities.Coordinates{Lat: 43.2653, Lng: 76.9456},
		},
		Restaurant: entities.RestaurantSnapshot{
			Name: "Navat",
			Address: entities.Address{
				Text: "Dostyk Ave 5", City: "Almaty",
				Coordinates: &entities.Coordinates{Lat: 43.2383, Lng: 76.9456},
			},
		},
		Contact:       entities.Contact{Name: "Aigerim", Phone: "+77010000000"},
		PaymentMethod: entities.PaymentCash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
