package http

import (
	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/generated/servers"

	"github.com/shopspring/decimal"
)

func toUser(u *user.User) servers.User {
	return servers.User{
		Id:          u.ID().String(),
		Name:        u.Name(),
		Email:       u.Email(),
		Phone:       u.Phone(),
		Role:        servers.UserRole(u.Role()),
		VehicleType: u.VehicleType(),
		CreatedAt:   u.CreatedAt(),
	}
}

func toAuthData(result commands.AuthResult) servers.AuthData {
	return servers.AuthData{
		User:         toUser(result.User),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}
}

func toAddress(a *address.Address) servers.Address {
	return servers.Address{
		Id:         a.ID().String(),
		Label:      a.Label(),
		Street:     a.Street(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
		CreatedAt:  a.CreatedAt(),
	}
}

func toAddresses(list []*address.Address) []servers.Address {
	response := make([]servers.Address, len(list))
	for i, a := range list {
		response[i] = toAddress(a)
	}
	return response
}

func toOrder(view ports.OrderView) servers.Order {
	o := view.Order
	details := o.Details()
	charges := o.Charges()

	response := servers.Order{
		Id:                  o.ID().String(),
		UserId:              o.UserID().String(),
		PickupAddressId:     o.PickupAddressID().String(),
		DeliveryAddressId:   o.DeliveryAddressID().String(),
		ItemDescription:     details.ItemDescription,
		ItemImage:           details.ItemImage,
		SpecialInstructions: details.SpecialInstructions,
		ScheduledPickup:     details.ScheduledPickup,
		BaseFee:             money(charges.BaseFee()),
		DeliveryFee:         money(charges.DeliveryFee()),
		TotalAmount:         money(charges.TotalAmount()),
		EstimatedDelivery:   charges.EstimatedDelivery(),
		Status:              servers.OrderStatus(o.Status()),
		CreatedAt:           o.CreatedAt(),
		PickupAddress:       toAddress(view.PickupAddress),
		DeliveryAddress:     toAddress(view.DeliveryAddress),
		User: servers.UserSummary{
			Id:    view.User.ID.String(),
			Name:  view.User.Name,
			Email: view.User.Email,
			Phone: view.User.Phone,
		},
		Tracking: toTracking(o.Tracking()),
	}

	if details.EstimatedValue != nil {
		value := money(*details.EstimatedValue)
		response.EstimatedValue = &value
	}
	if riderID := o.RiderID(); riderID != nil {
		id := riderID.String()
		response.RiderId = &id
	}
	if view.Rider != nil {
		response.Rider = &servers.RiderSummary{
			Id:          view.Rider.ID.String(),
			Name:        view.Rider.Name,
			Phone:       view.Rider.Phone,
			VehicleType: view.Rider.VehicleType,
		}
	}

	return response
}

func toOrders(views []ports.OrderView) []servers.Order {
	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return response
}

func toTracking(entries []*order.TrackingEntry) []servers.TrackingEntry {
	response := make([]servers.TrackingEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.TrackingEntry{
			Id:        entry.ID().String(),
			Status:    entry.Status().String(),
			Note:      entry.Note(),
			Timestamp: entry.Timestamp(),
		}
	}
	return response
}

func toPagination(p queries.Pagination) servers.Pagination {
	return servers.Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Pages: p.Pages,
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(order.CurrencyPlaces)
}
