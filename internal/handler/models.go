package handler

import (
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/service"
)

// Coordinates точка на карте
type Coordinates struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// Address адрес с необязательными координатами
type Address struct {
	Text        string       `json:"text" validate:"required,max=500"`
	City        string       `json:"city" validate:"required,max=100"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Restaurant снимок ресторана на момент оформления
type Restaurant struct {
	Name    string  `json:"name" validate:"required"`
	Address Address `json:"address"`
}

// Contact контакт получателя
type Contact struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,e164"`
}

// LineItem позиция заказа
type LineItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0,lte=1000000"`
	Quantity  int     `json:"quantity" validate:"gte=1,lte=100"`
}

// CheckoutRequest тело оформления и расчёта заказа
type CheckoutRequest struct {
	OrderID         string     `json:"order_id,omitempty" validate:"omitempty,uuid"`
	RestaurantID    string     `json:"restaurant_id" validate:"required"`
	Restaurant      Restaurant `json:"restaurant"`
	Items           []LineItem `json:"items" validate:"required,min=1,max=50,dive"`
	DeliveryAddress Address    `json:"delivery_address"`
	Contact         Contact    `json:"contact"`
	Notes           string     `json:"notes,omitempty" validate:"max=500"`
	PaymentMethod   string     `json:"payment_method" validate:"required,oneof=cash card wallet"`
	PromoCode       string     `json:"promo_code,omitempty" validate:"max=32"`
}

// QuoteResponse расчёт стоимости до оформления
type QuoteResponse struct {
	Subtotal            float64      `json:"subtotal"`
	DistanceKm          *float64     `json:"distance_km,omitempty"`
	DeliveryFee         float64      `json:"delivery_fee"`
	Discount            float64      `json:"discount"`
	Total               float64      `json:"total"`
	DeliveryCoordinates *Coordinates `json:"delivery_coordinates,omitempty"`
	MapCenter           *Coordinates `json:"map_center,omitempty"`
	Fallback            bool         `json:"fallback"`
}

// Order представляет заказ
type Order struct {
	ID              string       `json:"id"`
	CustomerID      string       `json:"customer_id"`
	RestaurantID    string       `json:"restaurant_id"`
	Status          string       `json:"status"`
	Items           []LineItem   `json:"items"`
	Subtotal        float64      `json:"subtotal"`
	DeliveryFee     float64      `json:"delivery_fee"`
	Discount        float64      `json:"discount"`
	Total           float64      `json:"total"`
	PromoCode       string       `json:"promo_code,omitempty"`
	DeliveryAddress Address      `json:"delivery_address"`
	Restaurant      Restaurant   `json:"restaurant"`
	Contact         Contact      `json:"contact"`
	Notes           string       `json:"notes,omitempty"`
	PaymentMethod   string       `json:"payment_method"`
	DriverLocation  *Coordinates `json:"driver_location,omitempty"`
	Buffered        bool         `json:"buffered,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// UpdateStatusRequest новый статус заказа
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Assignment назначение курьера на заказ
type Assignment struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"order_id"`
	DriverID        string     `json:"driver_id"`
	Status          string     `json:"status"`
	PickupAddress   Address    `json:"pickup_address"`
	DropoffAddress  Address    `json:"dropoff_address"`
	DriverEarnings  float64    `json:"driver_earnings"`
	AssignedAt      time.Time  `json:"assigned_at"`
	PickedUpAt      *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

// PickupRequest необязательная позиция курьера при заборе заказа
type PickupRequest struct {
	Location *Coordinates `json:"location,omitempty"`
}

// Driver профиль курьера
type Driver struct {
	ID                  string    `json:"id"`
	City                string    `json:"city"`
	Available           bool      `json:"available"`
	CompletedDeliveries int       `json:"completed_deliveries"`
	TotalEarnings       float64   `json:"total_earnings"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DriverProfileRequest обновление профиля курьера
type DriverProfileRequest struct {
	City      string `json:"city" validate:"required,max=100"`
	Available *bool  `json:"available" validate:"required"`
}

// LocationPushResponse когда курьеру прислать следующую точку
type LocationPushResponse struct {
	NextUpdateSeconds int `json:"next_update_seconds"`
}

// DriverLocation последняя известная позиция курьера
type DriverLocation struct {
	OrderID     string      `json:"order_id"`
	DriverID    string      `json:"driver_id"`
	Coordinates Coordinates `json:"coordinates"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// MessageRequest сообщение в чате заказа
type MessageRequest struct {
	ID      string `json:"id,omitempty" validate:"omitempty,uuid"`
	Content string `json:"content" validate:"required"`
}

// Message сообщение чата
type Message struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	SenderRole string    `json:"sender_role"`
	SenderID   string    `json:"sender_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// CallSignal запрос обратного звонка курьеру
type CallSignal struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	DriverID      string    `json:"driver_id"`
	CustomerID    string    `json:"customer_id"`
	CustomerPhone string    `json:"customer_phone"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func CoordinatesEntityToJSON(c *entities.Coordinates) *Coordinates {
	if c == nil {
		return nil
	}
	return &Coordinates{Lat: c.Lat, Lng: c.Lng}
}

func CoordinatesJSONToEntity(c *Coordinates) *entities.Coordinates {
	if c == nil {
		return nil
	}
	return &entities.Coordinates{Lat: c.Lat, Lng: c.Lng}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{Text: a.Text, City: a.City, Coordinates: CoordinatesEntityToJSON(a.Coordinates)}
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{Text: a.Text, City: a.City, Coordinates: CoordinatesJSONToEntity(a.Coordinates)}
}

func ItemEntityToJSON(i entities.LineItem) LineItem {
	return LineItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
	}
}

func ItemJSONToEntity(i LineItem) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
	}
}

func CheckoutJSONToInput(req CheckoutRequest) service.CheckoutInput {
	items := make([]entities.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	return service.CheckoutInput{
		OrderID:      req.OrderID,
		RestaurantID: req.RestaurantID,
		Restaurant: entities.RestaurantSnapshot{
			Name:    req.Restaurant.Name,
			Address: AddressJSONToEntity(req.Restaurant.Address),
		},
		Items:           items,
		DeliveryAddress: AddressJSONToEntity(req.DeliveryAddress),
		Contact:         entities.Contact{Name: req.Contact.Name, Phone: req.Contact.Phone},
		Notes:           req.Notes,
		PaymentMethod:   entities.PaymentMethod(req.PaymentMethod),
		PromoCode:       req.PromoCode,
	}
}

func QuoteToJSON(q service.Quote) QuoteResponse {
	return QuoteResponse{
		Subtotal:            q.Subtotal,
		DistanceKm:          q.DistanceKm,
		DeliveryFee:         q.DeliveryFee,
		Discount:            q.Discount,
		Total:               q.Total,
		DeliveryCoordinates: CoordinatesEntityToJSON(q.DeliveryCoordinates),
		MapCenter:           CoordinatesEntityToJSON(q.MapCenter),
		Fallback:            q.Fallback,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		RestaurantID:    o.RestaurantID,
		Status:          string(o.Status),
		Items:           items,
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		Discount:        o.Discount,
		Total:           o.Total,
		PromoCode:       o.PromoCode,
		DeliveryAddress: AddressEntityToJSON(o.DeliveryAddress),
		Restaurant: Restaurant{
			Name:    o.Restaurant.Name,
			Address: AddressEntityToJSON(o.Restaurant.Address),
		},
		Contact:        Contact{Name: o.Contact.Name, Phone: o.Contact.Phone},
		Notes:          o.Notes,
		PaymentMethod:  string(o.PaymentMethod),
		DriverLocation: CoordinatesEntityToJSON(o.DriverLocation),
		Buffered:       o.Buffered,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func AssignmentEntityToJSON(a entities.Assignment) Assignment {
	return Assignment{
		ID:              a.ID,
		OrderID:         a.OrderID,
		DriverID:        a.DriverID,
		Status:          string(a.Status),
		PickupAddress:   AddressEntityToJSON(a.PickupAddress),
		DropoffAddress:  AddressEntityToJSON(a.DropoffAddress),
		DriverEarnings:  a.DriverEarnings,
		AssignedAt:      a.AssignedAt,
		PickedUpAt:      a.PickedUpAt,
		DeliveredAt:     a.DeliveredAt,
		RejectedAt:      a.RejectedAt,
		RejectionReason: string(a.RejectionReason),
	}
}

func DriverEntityToJSON(d entities.Driver) Driver {
	return Driver{
		ID:                  d.ID,
		City:                d.City,
		Available:           d.Available,
		CompletedDeliveries: d.CompletedDeliveries,
		TotalEarnings:       d.TotalEarnings,
		UpdatedAt:           d.UpdatedAt,
	}
}

func LocationEntityToJSON(l entities.DriverLocation) DriverLocation {
	return DriverLocation{
		OrderID:     l.OrderID,
		DriverID:    l.DriverID,
		Coordinates: Coordinates{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng},
		UpdatedAt:   l.UpdatedAt,
	}
}

func MessageEntityToJSON(m entities.Message) Message {
	return Message{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderRole: string(m.SenderRole),
		SenderID:   m.SenderID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

func MessagesEntityToJSON(msgs []entities.Message) []Message {
	res := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, MessageEntityToJSON(m))
	}
	return res
}

func CallEntityToJSON(c entities.CallSignal) CallSignal {
	return CallSignal{
		ID:            c.ID,
		OrderID:       c.OrderID,
		DriverID:      c.DriverID,
		CustomerID:    c.CustomerID,
		CustomerPhone: c.CustomerPhone,
		CreatedAt:     c.CreatedAt,
		ExpiresAt:     c.ExpiresAt,
	}
}

func CallsEntityToJSON(calls []entities.CallSignal) []CallSignal {
	res := make([]CallSignal, 0, len(calls))
	for _, c := range calls {
		res = append(res, CallEntityToJSON(c))
	}
	return res
}
