package entities

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDriver     Role = "driver"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// Actor is the already authenticated caller of a command.
type Actor struct {
	ID           string
	Role         Role
	RestaurantID string
}

func (a Actor) Is(role Role) bool {
	return a.Role == role
}

// OwnsOrder reports whether the actor is the customer or the restaurant of the order.
func (a Actor) OwnsOrder(o Order) bool {
	switch a.Role {
	case RoleCustomer:
		return o.CustomerID == a.ID
	case RoleRestaurant:
		return a.RestaurantID != "" && o.RestaurantID == a.RestaurantID
	case RoleAdmin:
		return true
	}
	return false
}
