package address

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

const MaxFieldLength = 255

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress constructor")

// Address is a user-owned location.
type Address struct {
	id         kernel.ID
	userID     kernel.ID
	label      string
	street     string
	city       string
	state      string
	postalCode string
	country    string
	createdAt  time.Time

	isConstructed bool
}

// Fields groups the locality attributes of an address.
type Fields struct {
	Label      string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// NewAddress creates an address owned by userID. Street and city are required.
func NewAddress(id, userID kernel.ID, fields Fields, now time.Time) (*Address, error) {
	return build(id, userID, fields, now.UTC())
}

// RestoreAddress rebuilds a persisted address.
func RestoreAddress(id, userID kernel.ID, fields Fields, createdAt time.Time) (*Address, error) {
	return build(id, userID, fields, createdAt)
}

func build(id, userID kernel.ID, fields Fields, createdAt time.Time) (*Address, error) {
	a := &Address{
		id:            id,
		userID:        userID,
		label:         strings.TrimSpace(fields.Label),
		street:        strings.TrimSpace(fields.Street),
		city:          strings.TrimSpace(fields.City),
		state:         strings.TrimSpace(fields.State),
		postalCode:    strings.TrimSpace(fields.PostalCode),
		country:       strings.TrimSpace(fields.Country),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		required("street", a.street),
		required("city", a.city),
		maxLength("label", a.label),
		maxLength("street", a.street),
		maxLength("city", a.city),
		maxLength("state", a.state),
		maxLength("postal code", a.postalCode),
		maxLength("country", a.country),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.ID {
	return a.id
}

// UserID is the owner of the address.
func (a *Address) UserID() kernel.ID {
	return a.userID
}

func (a *Address) Label() string {
	return a.label
}

func (a *Address) Street() string {
	return a.street
}

func (a *Address) City() string {
	return a.city
}

func (a *Address) State() string {
	return a.state
}

func (a *Address) PostalCode() string {
	return a.postalCode
}

func (a *Address) Country() string {
	return a.country
}

func (a *Address) CreatedAt() time.Time {
	return a.createdAt
}

// IsOwnedBy reports whether userID owns the address.
func (a *Address) IsOwnedBy(userID kernel.ID) bool {
	return a.userID.IsEqual(userID)
}

// SameCity compares cities case-insensitively.
func (a *Address) SameCity(other *Address) bool {
	return other != nil && strings.EqualFold(a.city, other.city)
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func maxLength(name, value string) error {
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return errs.NewValueIsInvalidErrorWithCause(name+" is too long",
			fmt.Errorf("%s cannot exceed %d characters", name, MaxFieldLength))
	}
	return nil
}
