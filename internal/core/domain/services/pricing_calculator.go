package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Tariff. Decimal values cannot be constants.
var (
	BaseFee        = decimal.RequireFromString("5.00")
	PricePerKm     = decimal.RequireFromString("2.50")
	MinDeliveryFee = decimal.RequireFromString("8.00")
	InsuranceFloor = decimal.NewFromInt(100)
	InsuranceRate  = decimal.RequireFromString("0.02")
	InsuranceCap   = decimal.NewFromInt(20)
)

const (
	AverageSpeedKmH = 25.0
	HandlingBuffer  = 15 * time.Minute
)

var (
	ErrDistanceIsNotFinite = errors.New("distance must be a finite number")
	ErrClockIsMissing      = errors.New("PricingCalculator must be created via NewPricingCalculator constructor")
)

// PricingCalculator turns a distance into order charges.
//
// Business rules:
//   - base fee is 5.00
//   - delivery fee is distance x 2.50, never below 8.00
//   - an estimated value above 100 adds min(value x 0.02, 20) to the delivery fee
//   - total is base fee plus delivery fee, rounded half-up to cents
//   - estimated delivery is now + distance / 25 km/h + 15 minutes
type PricingCalculator struct {
	now func() time.Time
}

// NewPricingCalculator uses now as its clock; nil selects time.Now.
func NewPricingCalculator(now func() time.Time) PricingCalculator {
	if now == nil {
		now = time.Now
	}
	return PricingCalculator{now: now}
}

// Calculate prices a delivery of distanceKm. estimatedValue may be nil.
func (c PricingCalculator) Calculate(distanceKm float64, estimatedValue *decimal.Decimal) (order.Charges, error) {
	if c.now == nil {
		return order.Charges{}, ErrClockIsMissing
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return order.Charges{}, ErrDistanceIsNotFinite
	}
	if distanceKm < 0 {
		return order.Charges{}, errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%f is negative", distanceKm))
	}

	distance := decimal.NewFromFloat(distanceKm)

	deliveryFee := decimal.Max(distance.Mul(PricePerKm), MinDeliveryFee)
	if estimatedValue != nil && estimatedValue.GreaterThan(InsuranceFloor) {
		deliveryFee = deliveryFee.Add(decimal.Min(estimatedValue.Mul(InsuranceRate), InsuranceCap))
	}
	deliveryFee = deliveryFee.Round(order.CurrencyPlaces)

	total := BaseFee.Add(deliveryFee).Round(order.CurrencyPlaces)

	travel := time.Duration(distanceKm / AverageSpeedKmH * float64(time.Hour))
	estimatedDelivery := c.now().Add(travel + HandlingBuffer)

	return order.NewCharges(BaseFee, deliveryFee, total, estimatedDelivery)
}
