package entities

import "time"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWallet:
		return true
	}
	return false
}

type PromoKind string

const (
	PromoPercentage   PromoKind = "percentage"
	PromoFixed        PromoKind = "fixed"
	PromoFreeDelivery PromoKind = "free_delivery"
)

// Promo is applied at checkout only and is not re-validated afterwards.
type Promo struct {
	Code         string
	Kind         PromoKind
	Magnitude    float64
	MinOrder     *float64
	RestaurantID *string
	ExpiresAt    *time.Time
}

// Applicable checks threshold, scope and expiry of the promo for a given cart.
func (p Promo) Applicable(subtotal float64, restaurantID string, now time.Time) error {
	if p.ExpiresAt != nil && !now.Before(*p.ExpiresAt) {
		return Validationf("promo %s has expired", p.Code)
	}
	if p.MinOrder != nil && subtotal < *p.MinOrder {
		return Validationf("promo %s requires a minimum order of %.2f", p.Code, *p.MinOrder)
	}
	if p.RestaurantID != nil && *p.RestaurantID != restaurantID {
		return Validationf("promo %s is not valid for this restaurant", p.Code)
	}
	return nil
}
