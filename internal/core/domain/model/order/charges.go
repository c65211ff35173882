package order

import (
	"errors"
	"fmt"
	"time"

	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places charges are kept with.
const CurrencyPlaces = 2

var ErrChargesAreNotConstructed = errors.New("Charges must be created via NewCharges constructor")

// Charges are the financial terms of an order, fixed at placement.
type Charges struct { //nolint:recvcheck //using for validation
	baseFee           decimal.Decimal
	deliveryFee       decimal.Decimal
	totalAmount       decimal.Decimal
	estimatedDelivery time.Time

	guard guard.ConstructorGuard
}

// NewCharges rounds the fees to CurrencyPlaces and checks that the total equals
// base fee plus delivery fee.
func NewCharges(baseFee, deliveryFee, totalAmount decimal.Decimal, estimatedDelivery time.Time) (Charges, error) {
	c := Charges{
		baseFee:           baseFee.Round(CurrencyPlaces),
		deliveryFee:       deliveryFee.Round(CurrencyPlaces),
		totalAmount:       totalAmount.Round(CurrencyPlaces),
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	var errList []error
	if c.baseFee.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("base fee is invalid",
			fmt.Errorf("%s is negative", c.baseFee)))
	}
	if c.deliveryFee.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("delivery fee is invalid",
			fmt.Errorf("%s is negative", c.deliveryFee)))
	}
	if !c.totalAmount.Equal(c.baseFee.Add(c.deliveryFee)) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("total amount is invalid",
			fmt.Errorf("%s is not %s + %s", c.totalAmount, c.baseFee, c.deliveryFee)))
	}
	if estimatedDelivery.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("estimated delivery"))
	}
	if err := errors.Join(errList...); err != nil {
		return Charges{}, err
	}

	return c, nil
}

func (c Charges) Validate() error {
	return c.guard.Validate(ErrChargesAreNotConstructed)
}

func (c Charges) BaseFee() decimal.Decimal {
	return c.baseFee
}

func (c Charges) DeliveryFee() decimal.Decimal {
	return c.deliveryFee
}

func (c Charges) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

func (c Charges) EstimatedDelivery() time.Time {
	return c.estimatedDelivery
}
