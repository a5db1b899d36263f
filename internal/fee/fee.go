// Package fee contains pricing rules for delivery: distance, delivery fee,
// promo discounts and driver earnings. Everything here is pure.
package fee

import (
	"math"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0088

// DistanceKm returns the great-circle distance between two points.
func DistanceKm(a, b entities.Coordinates) float64 {
	const degToRad = math.Pi / 180
	dLat := (b.Lat - a.Lat) * degToRad
	dLng := (b.Lng - a.Lng) * degToRad
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*degToRad)*math.Cos(b.Lat*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

type Config struct {
	MinFee        float64
	RatePerKm     float64
	EarningsShare float64
}

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) Calculator {
	return Calculator{cfg: cfg}
}

func (c Calculator) MinFee() float64 {
	return c.cfg.MinFee
}

// DeliveryFee is max(minFee, round(km * ratePerKm)).
func (c Calculator) DeliveryFee(km float64) float64 {
	if km < 0 || math.IsNaN(km) {
		km = 0
	}
	return math.Max(c.cfg.MinFee, math.Round(km*c.cfg.RatePerKm))
}

// ApplyDiscount returns the discount for the promo, clamped to [0, subtotal+fee].
func (c Calculator) ApplyDiscount(subtotal, deliveryFee float64, promo *entities.Promo) float64 {
	if promo == nil {
		return 0
	}
	gross := subtotal + deliveryFee

	var discount float64
	switch promo.Kind {
	case entities.PromoPercentage:
		discount = subtotal * promo.Magnitude / 100
	case entities.PromoFixed:
		discount = math.Min(promo.Magnitude, gross)
	case entities.PromoFreeDelivery:
		discount = deliveryFee
	}

	return RoundMoney(clamp(discount, 0, gross))
}

// DriverEarnings is the fixed share of the delivery fee paid to the driver.
func (c Calculator) DriverEarnings(deliveryFee float64) float64 {
	return RoundMoney(deliveryFee * c.cfg.EarningsShare)
}

type Breakdown struct {
	Subtotal    float64
	DistanceKm  *float64
	DeliveryFee float64
	Discount    float64
	Total       float64
}

// Quote prices a cart. A missing coordinate on either side falls back to the minimum fee.
func (c Calculator) Quote(items []entities.LineItem, from, to *entities.Coordinates, promo *entities.Promo) Breakdown {
	b := Breakdown{Subtotal: Subtotal(items)}

	if from != nil && to != nil {
		km := DistanceKm(*from, *to)
		b.DistanceKm = &km
		b.DeliveryFee = c.DeliveryFee(km)
	} else {
		b.DeliveryFee = c.cfg.MinFee
	}

	b.Discount = c.ApplyDiscount(b.Subtotal, b.DeliveryFee, promo)
	b.Total = RoundMoney(math.Max(0, b.Subtotal+b.DeliveryFee-b.Discount))
	return b
}

func Subtotal(items []entities.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount()
	}
	return RoundMoney(sum)
}

// RoundMoney rounds to cents.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
