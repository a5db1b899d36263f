package fee_test

import (
	"math/rand"
	"testing"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/fee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var calc = fee.NewCalculator(fee.Config{MinFee: 5, RatePerKm: 5, EarningsShare: 0.2})

func TestDistanceKm(t *testing.T) {
	almaty := entities.Coordinates{Lat: 43.2383, Lng: 76.9456}
	astana := entities.Coordinates{Lat: 51.1694, Lng: 71.4491}
	shymkent := entities.Coordinates{Lat: 42.3417, Lng: 69.5901}

	t.Run("zero on same point", func(t *testing.T) {
		assert.InDelta(t, 0, fee.DistanceKm(almaty, almaty), 1e-9)
	})

	t.Run("known distance", func(t *testing.T) {
		// ~970 км по прямой
		assert.InDelta(t, 970, fee.DistanceKm(almaty, astana), 15)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, fee.DistanceKm(almaty, astana), fee.DistanceKm(astana, almaty), 1e-9)
	})

	t.Run("triangle inequality", func(t *testing.T) {
		direct := fee.DistanceKm(almaty, shymkent)
		viaAstana := fee.DistanceKm(almaty, astana) + fee.DistanceKm(astana, shymkent)
		assert.LessOrEqual(t, direct, viaAstana+1e-6)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := fee.DistanceKm(entities.Coordinates{Lat: 0, Lng: 0}, entities.Coordinates{Lat: 1, Lng: 0})
		assert.InDelta(t, 111.19, d, 0.05)
	})
}

func TestCalculator_DeliveryFee(t *testing.T) {
	testCases := []struct {
		name string
		km   float64
		want float64
	}{
		{"zero distance is min fee", 0, 5},
		{"below minimum", 0.4, 5},
		{"three km", 3, 15},
		{"rounds half up", 3.1, 16},
		{"rounds down", 3.05, 15},
		{"negative treated as zero", -2, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calc.DeliveryFee(tc.km))
		})
	}
}

func TestCalculator_DeliveryFeeMonotonic(t *testing.T) {
	prev := calc.DeliveryFee(0)
	for km := 0.0; km <= 50; km += 0.01 {
		cur := calc.DeliveryFee(km)
		require.GreaterOrEqualf(t, cur, prev, "fee decreased at %.2f km", km)
		prev = cur
	}
}

func TestCalculator_ApplyDiscount(t *testing.T) {
	testCases := []struct {
		name     string
		subtotal float64
		fee      float64
		promo    *entities.Promo
		want     float64
	}{
		{"no promo", 100, 15, nil, 0},
		{"percentage", 100, 15, &entities.Promo{Kind: entities.PromoPercentage, Magnitude: 10}, 10},
		{"percentage over 100 is clamped", 100, 15, &entities.Promo{Kind: entities.PromoPercentage, Magnitude: 250}, 115},
		{"fixed", 100, 15, &entities.Promo{Kind: entities.PromoFixed, Magnitude: 20}, 20},
		{"fixed larger than gross", 10, 5, &entities.Promo{Kind: entities.PromoFixed, Magnitude: 50}, 15},
		{"negative fixed is clamped", 10, 5, &entities.Promo{Kind: entities.PromoFixed, Magnitude: -5}, 0},
		{"free delivery", 100, 15, &entities.Promo{Kind: entities.PromoFreeDelivery}, 15},
		{"unknown kind", 100, 15, &entities.Promo{Kind: "mystery", Magnitude: 99}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calc.ApplyDiscount(tc.subtotal, tc.fee, tc.promo))
		})
	}
}

func TestCalculator_Quote(t *testing.T) {
	restaurant := entities.Coordinates{Lat: 43.2383, Lng: 76.9456}
	// ~3 км на север
	customer := entities.Coordinates{Lat: 43.2383 + 3/111.195, Lng: 76.9456}
	items := []entities.LineItem{{ProductID: "p1", UnitPrice: 40, Quantity: 2}, {ProductID: "p2", UnitPrice: 20, Quantity: 1}}

	t.Run("standard flow", func(t *testing.T) {
		b := calc.Quote(items, &restaurant, &customer, nil)
		assert.Equal(t, 100.0, b.Subtotal)
		require.NotNil(t, b.DistanceKm)
		assert.InDelta(t, 3, *b.DistanceKm, 0.01)
		assert.Equal(t, 15.0, b.DeliveryFee)
		assert.Equal(t, 115.0, b.Total)
		assert.Equal(t, 3.0, calc.DriverEarnings(b.DeliveryFee))
	})

	t.Run("percentage promo", func(t *testing.T) {
		b := calc.Quote(items, &restaurant, &customer, &entities.Promo{Kind: entities.PromoPercentage, Magnitude: 10})
		assert.Equal(t, 10.0, b.Discount)
		assert.Equal(t, 105.0, b.Total)
	})

	t.Run("free delivery promo", func(t *testing.T) {
		b := calc.Quote(items, &restaurant, &customer, &entities.Promo{Kind: entities.PromoFreeDelivery})
		assert.Equal(t, 15.0, b.Discount)
		assert.Equal(t, 100.0, b.Total)
	})

	t.Run("unresolved address falls back to min fee", func(t *testing.T) {
		b := calc.Quote(items, &restaurant, nil, nil)
		assert.Nil(t, b.DistanceKm)
		assert.Equal(t, 5.0, b.DeliveryFee)
		assert.Equal(t, 105.0, b.Total)
	})
}

func TestCalculator_QuoteTotalsInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	kinds := []entities.PromoKind{entities.PromoPercentage, entities.PromoFixed, entities.PromoFreeDelivery}

	for i := 0; i < 500; i++ {
		items := []entities.LineItem{{UnitPrice: float64(rnd.Intn(10000)) / 100, Quantity: 1 + rnd.Intn(4)}}
		from := entities.Coordinates{Lat: 43 + rnd.Float64(), Lng: 76 + rnd.Float64()}
		to := entities.Coordinates{Lat: 43 + rnd.Float64(), Lng: 76 + rnd.Float64()}
		promo := &entities.Promo{Kind: kinds[rnd.Intn(len(kinds))], Magnitude: float64(rnd.Intn(300))}

		b := calc.Quote(items, &from, &to, promo)
		order := entities.Order{Subtotal: b.Subtotal, DeliveryFee: b.DeliveryFee, Discount: b.Discount, Total: b.Total}
		require.NoError(t, order.CheckTotals(), "iteration %d: %+v", i, b)
	}
}
