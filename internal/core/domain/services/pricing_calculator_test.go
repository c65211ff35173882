package services_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"swiftdrop/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestPricingCalculator_Calculate(t *testing.T) {
	calc := services.NewPricingCalculator(clock)

	tests := []struct {
		name         string
		distanceKm   float64
		value        *decimal.Decimal
		wantDelivery string
		wantTotal    string
	}{
		{
			name:         "short trip hits the minimum fee",
			distanceKm:   2,
			wantDelivery: "8.00",
			wantTotal:    "13.00",
		},
		{
			name:         "ten kilometres",
			distanceKm:   10,
			wantDelivery: "25.00",
			wantTotal:    "30.00",
		},
		{
			name:         "fractional distance is rounded half up",
			distanceKm:   12.345,
			wantDelivery: "30.86",
			wantTotal:    "35.86",
		},
		{
			name:         "value of exactly 100 is not insured",
			distanceKm:   10,
			value:        decimalPtr("100"),
			wantDelivery: "25.00",
			wantTotal:    "30.00",
		},
		{
			name:         "insurance surcharge is capped at 20",
			distanceKm:   10,
			value:        decimalPtr("5000"),
			wantDelivery: "45.00",
			wantTotal:    "50.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charges, err := calc.Calculate(tt.distanceKm, tt.value)

			require.NoError(t, err)
			assert.Equal(t, "5.00", charges.BaseFee().StringFixed(2))
			assert.Equal(t, tt.wantDelivery, charges.DeliveryFee().StringFixed(2))
			assert.Equal(t, tt.wantTotal, charges.TotalAmount().StringFixed(2))
			travel := time.Duration(tt.distanceKm / services.AverageSpeedKmH * float64(time.Hour))
			assert.Equal(t, fixedNow.Add(travel+services.HandlingBuffer), charges.EstimatedDelivery())
		})
	}
}

func TestPricingCalculator_SurchargeForValue150(t *testing.T) {
	calc := services.NewPricingCalculator(clock)
	distance := 37.1234

	plain, err := calc.Calculate(distance, nil)
	require.NoError(t, err)
	insured, err := calc.Calculate(distance, decimalPtr("150"))
	require.NoError(t, err)

	assert.Equal(t, "3.00", insured.DeliveryFee().Sub(plain.DeliveryFee()).StringFixed(2))
	assert.Equal(t, "3.00", insured.TotalAmount().Sub(plain.TotalAmount()).StringFixed(2))
}

func TestPricingCalculator_Invariants(t *testing.T) {
	calc := services.NewPricingCalculator(clock)
	rnd := rand.New(rand.NewPCG(3, 5))

	for range 500 {
		distance := rnd.Float64() * 80
		var value *decimal.Decimal
		if rnd.IntN(2) == 0 {
			value = decimalPtr(decimal.NewFromFloat(rnd.Float64() * 3000).StringFixed(2))
		}

		charges, err := calc.Calculate(distance, value)

		require.NoError(t, err)
		assert.True(t, charges.BaseFee().Equal(services.BaseFee))
		assert.True(t, charges.DeliveryFee().GreaterThanOrEqual(services.MinDeliveryFee))
		assert.True(t, charges.TotalAmount().Equal(charges.BaseFee().Add(charges.DeliveryFee())))
		assert.True(t, charges.TotalAmount().Equal(charges.TotalAmount().Round(2)))
		assert.True(t, charges.EstimatedDelivery().After(fixedNow))
	}
}

func TestPricingCalculator_RejectsBadDistances(t *testing.T) {
	calc := services.NewPricingCalculator(clock)

	_, err := calc.Calculate(math.NaN(), nil)
	require.ErrorIs(t, err, services.ErrDistanceIsNotFinite)

	_, err = calc.Calculate(-1, nil)
	require.Error(t, err)

	var zero services.PricingCalculator
	_, err = zero.Calculate(5, nil)
	require.ErrorIs(t, err, services.ErrClockIsMissing)
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
