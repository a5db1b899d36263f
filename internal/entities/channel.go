package entities

import "time"

type SenderRole string

const (
	SenderCustomer SenderRole = "customer"
	SenderDriver   SenderRole = "driver"
)

type Message struct {
	ID         string
	OrderID    string
	SenderRole SenderRole
	SenderID   string
	Content    string
	CreatedAt  time.Time
}

// CallSignal asks the assigned driver to call the customer back.
type CallSignal struct {
	ID            string
	OrderID       string
	DriverID      string
	CustomerID    string
	CustomerPhone string
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

type DriverLocation struct {
	OrderID     string
	DriverID    string
	Coordinates Coordinates
	UpdatedAt   time.Time
}

type EventType string

const (
	EventOrderCreated        EventType = "order.created"
	EventOrderStatusChanged  EventType = "order.status_changed"
	EventAssignmentClaimed   EventType = "assignment.claimed"
	EventAssignmentRejected  EventType = "assignment.rejected"
	EventAssignmentPickedUp  EventType = "assignment.picked_up"
	EventAssignmentDelivered EventType = "assignment.delivered"
	EventLocationUpdated     EventType = "location.updated"
	EventMessageCreated      EventType = "message.created"
	EventCallRequested       EventType = "call.requested"
)

// Event is a wake-up hint. Consumers re-fetch state instead of trusting its payload.
type Event struct {
	ID           string
	Type         EventType
	OrderID      string
	CustomerID   string
	RestaurantID string
	DriverID     string
	City         string
	Status       string
	OccurredAt   time.Time
}
