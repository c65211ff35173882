// Package orderrepo persists delivery orders and their tracking history,
// and serves the joined order view read by the query side.
package orderrepo

import (
	"time"

	"swiftdrop/internal/adapters/out/postgres/addressrepo"
	"swiftdrop/internal/adapters/out/postgres/userrepo"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/ports"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. Money columns are fixed-point with two
// decimals; the relations are only loaded by FindByID and FindByUser.
type OrderDTO struct {
	ID                  string           `gorm:"type:varchar(25);primaryKey"`
	UserID              string           `gorm:"type:varchar(25);not null;index"`
	PickupAddressID     string           `gorm:"type:varchar(25);not null"`
	DeliveryAddressID   string           `gorm:"type:varchar(25);not null"`
	RiderID             *string          `gorm:"type:varchar(25);index"`
	ItemDescription     string           `gorm:"size:500;not null"`
	ItemImage           *string          `gorm:"type:text"`
	SpecialInstructions *string          `gorm:"size:1000"`
	EstimatedValue      *decimal.Decimal `gorm:"type:numeric(10,2)"`
	BaseFee             decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	DeliveryFee         decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	TotalAmount         decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	Status              string           `gorm:"size:16;not null;index"`
	ScheduledPickup     *time.Time
	EstimatedDelivery   time.Time `gorm:"not null"`
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time

	User            userrepo.UserDTO       `gorm:"foreignKey:UserID"`
	Rider           *userrepo.UserDTO      `gorm:"foreignKey:RiderID"`
	PickupAddress   addressrepo.AddressDTO `gorm:"foreignKey:PickupAddressID"`
	DeliveryAddress addressrepo.AddressDTO `gorm:"foreignKey:DeliveryAddressID"`
	Tracking        []TrackingDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// TrackingDTO is one row of the order tracking history.
type TrackingDTO struct {
	ID         string    `gorm:"type:varchar(25);primaryKey"`
	OrderID    string    `gorm:"type:varchar(25);not null;index"`
	Status     string    `gorm:"size:16;not null"`
	Note       string    `gorm:"size:1000"`
	RecordedAt time.Time `gorm:"not null"`
}

func (TrackingDTO) TableName() string {
	return "order_tracking"
}

func fromDomain(o *order.Order) (OrderDTO, []TrackingDTO) {
	details := o.Details()
	charges := o.Charges()

	var riderID *string
	if id := o.RiderID(); id != nil {
		raw := id.String()
		riderID = &raw
	}

	dto := OrderDTO{
		ID:                  o.ID().String(),
		UserID:              o.UserID().String(),
		PickupAddressID:     o.PickupAddressID().String(),
		DeliveryAddressID:   o.DeliveryAddressID().String(),
		RiderID:             riderID,
		ItemDescription:     details.ItemDescription,
		ItemImage:           details.ItemImage,
		SpecialInstructions: details.SpecialInstructions,
		EstimatedValue:      details.EstimatedValue,
		BaseFee:             charges.BaseFee(),
		DeliveryFee:         charges.DeliveryFee(),
		TotalAmount:         charges.TotalAmount(),
		Status:              o.Status().String(),
		ScheduledPickup:     details.ScheduledPickup,
		EstimatedDelivery:   charges.EstimatedDelivery(),
		CreatedAt:           o.CreatedAt(),
	}

	tracking := make([]TrackingDTO, 0, len(o.Tracking()))
	for _, entry := range o.Tracking() {
		tracking = append(tracking, TrackingDTO{
			ID:         entry.ID().String(),
			OrderID:    dto.ID,
			Status:     entry.Status().String(),
			Note:       entry.Note(),
			RecordedAt: entry.Timestamp(),
		})
	}

	return dto, tracking
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids, err := parseIDs(dto.ID, dto.UserID, dto.PickupAddressID, dto.DeliveryAddressID)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.ID
	if dto.RiderID != nil {
		id, riderErr := kernel.IDFromString(*dto.RiderID)
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &id
	}

	charges, err := order.NewCharges(dto.BaseFee, dto.DeliveryFee, dto.TotalAmount, dto.EstimatedDelivery)
	if err != nil {
		return nil, err
	}

	tracking := make([]*order.TrackingEntry, 0, len(dto.Tracking))
	for _, row := range dto.Tracking {
		id, idErr := kernel.IDFromString(row.ID)
		if idErr != nil {
			return nil, idErr
		}
		entry, entryErr := order.NewTrackingEntry(id, order.Status(row.Status), row.Note, row.RecordedAt)
		if entryErr != nil {
			return nil, entryErr
		}
		tracking = append(tracking, entry)
	}

	details := order.Details{
		ItemDescription:     dto.ItemDescription,
		ItemImage:           dto.ItemImage,
		SpecialInstructions: dto.SpecialInstructions,
		EstimatedValue:      dto.EstimatedValue,
		ScheduledPickup:     dto.ScheduledPickup,
	}

	return order.RestoreOrder(ids[0], ids[1], ids[2], ids[3],
		details, charges, order.Status(dto.Status), riderID, tracking, dto.CreatedAt)
}

// toView maps an order row with its preloaded relations into the read model.
func toView(dto OrderDTO) (ports.OrderView, error) {
	o, err := toDomain(dto)
	if err != nil {
		return ports.OrderView{}, err
	}

	pickup, err := addressrepo.ToDomain(dto.PickupAddress)
	if err != nil {
		return ports.OrderView{}, err
	}

	delivery, err := addressrepo.ToDomain(dto.DeliveryAddress)
	if err != nil {
		return ports.OrderView{}, err
	}

	owner, err := toUserSummary(dto.User)
	if err != nil {
		return ports.OrderView{}, err
	}

	view := ports.OrderView{
		Order:           o,
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		User:            owner,
	}

	if dto.Rider != nil {
		rider, riderErr := toUserSummary(*dto.Rider)
		if riderErr != nil {
			return ports.OrderView{}, riderErr
		}
		view.Rider = &ports.RiderSummary{
			ID:          rider.ID,
			Name:        rider.Name,
			Phone:       rider.Phone,
			VehicleType: dto.Rider.VehicleType,
		}
	}

	return view, nil
}

func toUserSummary(dto userrepo.UserDTO) (ports.UserSummary, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return ports.UserSummary{}, err
	}

	return ports.UserSummary{
		ID:    id,
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	}, nil
}

func parseIDs(raw ...string) ([]kernel.ID, error) {
	ids := make([]kernel.ID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.IDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
