// Package addressrepo persists the address book with GORM.
package addressrepo

import (
	"time"

	"swiftdrop/internal/adapters/out/postgres/userrepo"
	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
)

// AddressDTO is the addresses table row. Every address belongs to a user.
type AddressDTO struct {
	ID         string           `gorm:"type:varchar(25);primaryKey"`
	UserID     string           `gorm:"type:varchar(25);not null;index"`
	User       userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Label      string           `gorm:"size:255"`
	Street     string           `gorm:"size:255;not null"`
	City       string           `gorm:"size:255;not null"`
	State      string           `gorm:"size:255"`
	PostalCode string           `gorm:"size:255"`
	Country    string           `gorm:"size:255"`
	CreatedAt  time.Time
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(a *address.Address) AddressDTO {
	return AddressDTO{
		ID:         a.ID().String(),
		UserID:     a.UserID().String(),
		Label:      a.Label(),
		Street:     a.Street(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
		CreatedAt:  a.CreatedAt(),
	}
}

// ToDomain restores an address from its row.
func ToDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.IDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}

	return address.RestoreAddress(id, userID, address.Fields{
		Label:      dto.Label,
		Street:     dto.Street,
		City:       dto.City,
		State:      dto.State,
		PostalCode: dto.PostalCode,
		Country:    dto.Country,
	}, dto.CreatedAt)
}
