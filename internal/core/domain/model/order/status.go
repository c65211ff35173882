package order

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Placement produces Pending;
// every later state is driven by fulfilment.
type Status string

const (
	Pending   Status = "PENDING"
	Confirmed Status = "CONFIRMED"
	Assigned  Status = "ASSIGNED"
	PickedUp  Status = "PICKED_UP"
	InTransit Status = "IN_TRANSIT"
	Delivered Status = "DELIVERED"
	Cancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// Validate accepts the known lifecycle states only.
func (s Status) Validate() error {
	switch s {
	case Pending, Confirmed, Assigned, PickedUp, InTransit, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// IsFinal reports whether no further transitions are expected.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}
