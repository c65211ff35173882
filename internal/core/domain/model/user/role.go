package user

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// Role is the authorization class of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
	RoleRider Role = "RIDER"
)

func (r Role) String() string {
	return string(r)
}

// Validate accepts USER, ADMIN and RIDER.
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAdmin, RoleRider:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// ParseRole converts s into a Role, failing on unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}
