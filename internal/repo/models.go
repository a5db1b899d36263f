package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
)

type Order struct {
	ID           string `db:"id"`
	CustomerID   string `db:"customer_id"`
	RestaurantID string `db:"restaurant_id"`
	Status       string `db:"status"`

	Subtotal    float64        `db:"subtotal"`
	DeliveryFee float64        `db:"delivery_fee"`
	Discount    float64        `db:"discount"`
	Total       float64        `db:"total"`
	PromoCode   sql.NullString `db:"promo_code"`

	DeliveryAddress string          `db:"delivery_address"`
	DeliveryCity    string          `db:"delivery_city"`
	DeliveryLat     sql.NullFloat64 `db:"delivery_lat"`
	DeliveryLng     sql.NullFloat64 `db:"delivery_lng"`

	RestaurantName    string          `db:"restaurant_name"`
	RestaurantAddress string          `db:"restaurant_address"`
	RestaurantCity    string          `db:"restaurant_city"`
	RestaurantLat     sql.NullFloat64 `db:"restaurant_lat"`
	RestaurantLng     sql.NullFloat64 `db:"restaurant_lng"`

	ContactName   string         `db:"contact_name"`
	ContactPhone  string         `db:"contact_phone"`
	Notes         sql.NullString `db:"notes"`
	PaymentMethod string         `db:"payment_method"`

	DriverLat sql.NullFloat64 `db:"driver_lat"`
	DriverLng sql.NullFloat64 `db:"driver_lng"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var orderColumns = []string{
	"id", "customer_id", "restaurant_id", "status",
	"subtotal", "delivery_fee", "discount", "total", "promo_code",
	"delivery_address", "delivery_city", "delivery_lat", "delivery_lng",
	"restaurant_name", "restaurant_address", "restaurant_city", "restaurant_lat", "restaurant_lng",
	"contact_name", "contact_phone", "notes", "payment_method",
	"driver_lat", "driver_lng", "created_at", "updated_at",
}

type Item struct {
	OrderID   string  `db:"order_id"`
	Position  int     `db:"position"`
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	UnitPrice float64 `db:"unit_price"`
	Quantity  int     `db:"quantity"`
}

type Assignment struct {
	ID       string `db:"id"`
	OrderID  string `db:"order_id"`
	DriverID string `db:"driver_id"`
	Status   string `db:"status"`

	PickupAddress  string          `db:"pickup_address"`
	PickupCity     string          `db:"pickup_city"`
	PickupLat      sql.NullFloat64 `db:"pickup_lat"`
	PickupLng      sql.NullFloat64 `db:"pickup_lng"`
	DropoffAddress string          `db:"dropoff_address"`
	DropoffCity    string          `db:"dropoff_city"`
	DropoffLat     sql.NullFloat64 `db:"dropoff_lat"`
	DropoffLng     sql.NullFloat64 `db:"dropoff_lng"`

	DriverEarnings  float64        `db:"driver_earnings"`
	AssignedAt      time.Time      `db:"assigned_at"`
	PickedUpAt      sql.NullTime   `db:"picked_up_at"`
	DeliveredAt     sql.NullTime   `db:"delivered_at"`
	RejectedAt      sql.NullTime   `db:"rejected_at"`
	RejectionReason sql.NullString `db:"rejection_reason"`
}

var assignmentColumns = []string{
	"id", "order_id", "driver_id", "status",
	"pickup_address", "pickup_city", "pickup_lat", "pickup_lng",
	"dropoff_address", "dropoff_city", "dropoff_lat", "dropoff_lng",
	"driver_earnings", "assigned_at", "picked_up_at", "delivered_at",
	"rejected_at", "rejection_reason",
}

func qualified(alias string, cols []string) []string {
	res := make([]string, len(cols))
	for i, c := range cols {
		res[i] = alias + "." + c
	}
	return res
}

type Driver struct {
	ID                  string    `db:"id"`
	City                string    `db:"city"`
	Available           bool      `db:"available"`
	CompletedDeliveries int       `db:"completed_deliveries"`
	TotalEarnings       float64   `db:"total_earnings"`
	UpdatedAt           time.Time `db:"updated_at"`
}

type Promo struct {
	Code         string          `db:"code"`
	Kind         string          `db:"kind"`
	Magnitude    float64         `db:"magnitude"`
	MinOrder     sql.NullFloat64 `db:"min_order"`
	RestaurantID sql.NullString  `db:"restaurant_id"`
	ExpiresAt    sql.NullTime    `db:"expires_at"`
}

type Message struct {
	ID         string    `db:"id"`
	OrderID    string    `db:"order_id"`
	SenderRole string    `db:"sender_role"`
	SenderID   string    `db:"sender_id"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		Status:       entities.OrderStatus(o.Status),
		Subtotal:     o.Subtotal,
		DeliveryFee:  o.DeliveryFee,
		Discount:     o.Discount,
		Total:        o.Total,
		PromoCode:    nullStringToString(o.PromoCode),
		DeliveryAddress: entities.Address{
			Text:        o.DeliveryAddress,
			City:        o.DeliveryCity,
			Coordinates: nullCoordinates(o.DeliveryLat, o.DeliveryLng),
		},
		Restaurant: entities.RestaurantSnapshot{
			Name: o.RestaurantName,
			Address: entities.Address{
				Text:        o.RestaurantAddress,
				City:        o.RestaurantCity,
				Coordinates: nullCoordinates(o.RestaurantLat, o.RestaurantLng),
			},
		},
		Contact:        entities.Contact{Name: o.ContactName, Phone: o.ContactPhone},
		Notes:          nullStringToString(o.Notes),
		PaymentMethod:  entities.PaymentMethod(o.PaymentMethod),
		DriverLocation: nullCoordinates(o.DriverLat, o.DriverLng),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, entities.LineItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
			})
		}
	}

	return order
}

func AssignmentToEntity(a Assignment) entities.Assignment {
	return entities.Assignment{
		ID:       a.ID,
		OrderID:  a.OrderID,
		DriverID: a.DriverID,
		Status:   entities.AssignmentStatus(a.Status),
		PickupAddress: entities.Address{
			Text:        a.PickupAddress,
			City:        a.PickupCity,
			Coordinates: nullCoordinates(a.PickupLat, a.PickupLng),
		},
		DropoffAddress: entities.Address{
			Text:        a.DropoffAddress,
			City:        a.DropoffCity,
			Coordinates: nullCoordinates(a.DropoffLat, a.DropoffLng),
		},
		DriverEarnings:  a.DriverEarnings,
		AssignedAt:      a.AssignedAt,
		PickedUpAt:      nullTimeToPtr(a.PickedUpAt),
		DeliveredAt:     nullTimeToPtr(a.DeliveredAt),
		RejectedAt:      nullTimeToPtr(a.RejectedAt),
		RejectionReason: entities.RejectionReason(nullStringToString(a.RejectionReason)),
	}
}

func DriverToEntity(d Driver) entities.Driver {
	return entities.Driver{
		ID:                  d.ID,
		City:                d.City,
		Available:           d.Available,
		CompletedDeliveries: d.CompletedDeliveries,
		TotalEarnings:       d.TotalEarnings,
		UpdatedAt:           d.UpdatedAt,
	}
}

func PromoToEntity(p Promo) entities.Promo {
	promo := entities.Promo{
		Code:      p.Code,
		Kind:      entities.PromoKind(p.Kind),
		Magnitude: p.Magnitude,
		ExpiresAt: nullTimeToPtr(p.ExpiresAt),
	}
	if p.MinOrder.Valid {
		v := p.MinOrder.Float64
		promo.MinOrder = &v
	}
	if p.RestaurantID.Valid {
		v := p.RestaurantID.String
		promo.RestaurantID = &v
	}
	return promo
}

func MessageToEntity(m Message) entities.Message {
	return entities.Message{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderRole: entities.SenderRole(m.SenderRole),
		SenderID:   m.SenderID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nullCoordinates(lat, lng sql.NullFloat64) *entities.Coordinates {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &entities.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// coordinatesArgs раскладывает координаты в пару nullable-колонок.
func coordinatesArgs(c *entities.Coordinates) (sql.NullFloat64, sql.NullFloat64) {
	if c == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: c.Lat, Valid: true}, sql.NullFloat64{Float64: c.Lng, Valid: true}
}
