package entities

import (
	"fmt"
	"strings"
	"time"
)

type Coordinates struct {
	Lat float64
	Lng float64
}

type Address struct {
	Text        string
	City        string
	Coordinates *Coordinates // nil, если адрес не удалось разрешить
}

// RestaurantSnapshot - данные ресторана из каталога на момент оформления.
type RestaurantSnapshot struct {
	Name    string
	Address Address
}

type Contact struct {
	Name  string
	Phone string
}

// LineItem: название и цена фиксируются при оформлении заказа.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
}

func (i LineItem) Amount() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type Order struct {
	ID           string
	CustomerID   string
	RestaurantID string
	Status       OrderStatus

	Items       []LineItem
	Subtotal    float64
	DeliveryFee float64
	Discount    float64
	Total       float64
	PromoCode   string

	DeliveryAddress Address
	Restaurant      RestaurantSnapshot
	Contact         Contact
	Notes           string
	PaymentMethod   PaymentMethod

	DriverLocation *Coordinates

	// Buffered выставлен, если заказ принят в локальный буфер
	// и ещё не попал в хранилище.
	Buffered bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusAssigned  OrderStatus = "assigned"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
	StatusRejected  OrderStatus = "rejected"
)

// statusOnWay - так клиентские консоли называют picked_up.
const statusOnWay = "on_way"

// EdgeOwner указывает, какая сторона может выполнить переход.
type EdgeOwner int

const (
	OwnerRestaurant EdgeOwner = iota + 1
	OwnerDispatch
	OwnerCanceller
)

var orderTransitions = map[OrderStatus]map[OrderStatus]EdgeOwner{
	StatusPending: {
		StatusConfirmed: OwnerRestaurant,
		StatusRejected:  OwnerRestaurant,
		StatusCancelled: OwnerCanceller,
	},
	StatusConfirmed: {
		StatusPreparing: OwnerRestaurant,
		StatusAssigned:  OwnerDispatch,
		StatusCancelled: OwnerCanceller,
	},
	StatusPreparing: {
		StatusReady:     OwnerRestaurant,
		StatusCancelled: OwnerCanceller,
	},
	StatusReady: {
		StatusAssigned:  OwnerDispatch,
		StatusCancelled: OwnerCanceller,
	},
	StatusAssigned: {
		StatusPickedUp:  OwnerDispatch,
		StatusReady:     OwnerDispatch,
		StatusCancelled: OwnerCanceller,
	},
	StatusPickedUp: {
		StatusDelivered: OwnerDispatch,
	},
}

// ClaimableStatuses - статусы, в которых курьер может взять заказ.
var ClaimableStatuses = []OrderStatus{StatusConfirmed, StatusReady}

// EdgeOwner возвращает владельца перехода from->to и false, если перехода нет.
func (s OrderStatus) EdgeOwner(to OrderStatus) (EdgeOwner, bool) {
	owner, ok := orderTransitions[s][to]
	return owner, ok
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	_, ok := s.EdgeOwner(to)
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

func (s OrderStatus) IsClaimable() bool {
	for _, c := range ClaimableStatuses {
		if s == c {
			return true
		}
	}
	return false
}

// IsClaimed сообщает, занят ли заказ активным назначением.
func (s OrderStatus) IsClaimed() bool {
	return s == StatusAssigned || s == StatusPickedUp || s == StatusDelivered
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == statusOnWay {
		return StatusPickedUp, nil
	}
	switch st := OrderStatus(v); st {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusAssigned,
		StatusPickedUp, StatusDelivered, StatusCancelled, StatusRejected:
		return st, nil
	}
	return "", Validationf("unknown order status %q", s)
}

// CheckTotals проверяет инвариант total = max(0, subtotal + fee - discount).
func (o Order) CheckTotals() error {
	gross := o.Subtotal + o.DeliveryFee
	if o.Discount < 0 || o.Discount > gross+1e-9 {
		return fmt.Errorf("discount %.2f out of range [0, %.2f]", o.Discount, gross)
	}
	want := max(0, gross-o.Discount)
	if diff := o.Total - want; diff > 0.005 || diff < -0.005 {
		return fmt.Errorf("total %.2f, want %.2f", o.Total, want)
	}
	return nil
}

// OrderFilter ограничивает выборку. Пустые поля не применяются.
type OrderFilter struct {
	CustomerID   string
	RestaurantID string
	DriverID     string
	Status       OrderStatus
	Limit        int
}
