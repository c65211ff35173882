package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

const (
	MaxNameLength  = 100
	MaxEmailLength = 255
	MaxPhoneLength = 32
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a registered account.
type User struct {
	id           kernel.ID
	name         string
	email        string
	passwordHash string
	phone        string
	role         Role
	vehicleType  *string
	createdAt    time.Time

	isConstructed bool
}

// NewUser registers a new account with role USER.
// passwordHash must already be hashed; plain passwords never reach the domain.
func NewUser(id kernel.ID, name, email, passwordHash, phone string, now time.Time) (*User, error) {
	u := &User{
		role:          RoleUser,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user without applying registration defaults.
func RestoreUser(
	id kernel.ID,
	name, email, passwordHash, phone string,
	role Role,
	vehicleType *string,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setPhone(phone),
		u.setRole(role, vehicleType),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Role() Role {
	return u.role
}

// VehicleType is set for riders only.
func (u *User) VehicleType() *string {
	return u.vehicleType
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Identity returns the verified identity of this user.
func (u *User) Identity() (Identity, error) {
	return NewIdentity(u.id, u.role)
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name is too long",
			fmt.Errorf("name cannot exceed %d characters", MaxNameLength))
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(email) > MaxEmailLength {
		return errs.NewValueIsInvalidErrorWithCause("email is too long",
			fmt.Errorf("email cannot exceed %d characters", MaxEmailLength))
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if len(phone) > MaxPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause("phone is too long",
			fmt.Errorf("phone cannot exceed %d characters", MaxPhoneLength))
	}
	u.phone = phone
	return nil
}

func (u *User) setRole(role Role, vehicleType *string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if vehicleType != nil && role != RoleRider {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid",
			fmt.Errorf("%s users cannot have a vehicle type", role))
	}
	u.role = role
	u.vehicleType = vehicleType
	return nil
}
