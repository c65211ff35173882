// Package userrepo persists user accounts with GORM.
package userrepo

import (
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
)

// UserDTO is the users table row. Email is unique.
type UserDTO struct {
	ID           string  `gorm:"type:varchar(25);primaryKey"`
	Name         string  `gorm:"size:100;not null"`
	Email        string  `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string  `gorm:"not null"`
	Phone        string  `gorm:"size:32"`
	Role         string  `gorm:"size:16;not null;default:USER"`
	VehicleType  *string `gorm:"size:64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().String(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		VehicleType:  u.VehicleType(),
		CreatedAt:    u.CreatedAt(),
	}
}

// ToDomain restores a user from its row.
func ToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, dto.Phone, role, dto.VehicleType, dto.CreatedAt)
}
