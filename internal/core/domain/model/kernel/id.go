package kernel

import (
	"fmt"
	"regexp"

	"swiftdrop/internal/pkg/errs"

	"github.com/lucsky/cuid"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// idPattern is the CUID shape: a leading "c" followed by 24 lowercase base36 characters.
var idPattern = regexp.MustCompile(`^c[a-z0-9]{24}$`)

// ID identifies users, addresses, orders and tracking entries.
// The zero value is invalid.
//
// Example:
//
//	id := kernel.NewID()
//	parsed, err := kernel.IDFromString(id.String())
type ID struct {
	value string
}

// NewID generates a fresh collision-resistant identifier.
func NewID() ID {
	return ID{value: cuid.New()}
}

// IDFromString parses s, rejecting anything that is not a CUID.
func IDFromString(s string) (ID, error) {
	if !idPattern.MatchString(s) {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"invalid ID format",
			fmt.Errorf("%q does not match %s", s, idPattern.String()),
		)
	}
	return ID{value: s}, nil
}

// IsValidID reports whether s has the identifier shape without allocating an ID.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
