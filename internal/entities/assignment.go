package entities

import "time"

type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentPickedUp  AssignmentStatus = "picked_up"
	AssignmentDelivered AssignmentStatus = "delivered"
	AssignmentRejected  AssignmentStatus = "rejected"
)

// IsActive reports whether the assignment still holds its order.
func (s AssignmentStatus) IsActive() bool {
	return s != AssignmentRejected
}

type RejectionReason string

const (
	RejectedByDriver      RejectionReason = "driver"
	RejectedOnTimeout     RejectionReason = "timeout"
	RejectedOrderCanceled RejectionReason = "order_cancelled"
)

type Assignment struct {
	ID       string
	OrderID  string
	DriverID string
	Status   AssignmentStatus

	PickupAddress  Address
	DropoffAddress Address
	DriverEarnings float64

	AssignedAt      time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	RejectedAt      *time.Time
	RejectionReason RejectionReason
}

type Driver struct {
	ID                  string
	City                string
	Available           bool
	CompletedDeliveries int
	TotalEarnings       float64
	UpdatedAt           time.Time
}
