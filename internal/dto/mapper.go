package dto

import "addressbook/internal/domain"

// Explicit field-by-field mapping between entities and DTOs. Renamed fields
// (street vs address_line1) are mapped by hand on purpose: reflection-based
// property copying silently drops fields whose names differ.

// ToAddressEntity converts an address request into a new Address entity.
// The owner back-reference is left for the caller to set.
func ToAddressEntity(req *AddressRequest) *domain.Address {
	if req == nil {
		return nil
	}
	return &domain.Address{
		AddressLine1: req.Street,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
		Tags:         toTagEntities(req.Tags),
	}
}

// FromAddressEntity converts an Address entity into its response projection
func FromAddressEntity(address *domain.Address) *AddressResponse {
	if address == nil {
		return nil
	}
	return &AddressResponse{
		ID:           address.ID,
		Street:       address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		ZipCode:      address.ZipCode,
		Country:      address.Country,
		Tags:         fromTagEntities(address.Tags),
	}
}

// FromAddressEntities maps a slice of addresses, preserving order
func FromAddressEntities(addresses []domain.Address) []AddressResponse {
	out := make([]AddressResponse, len(addresses))
	for i := range addresses {
		out[i] = *FromAddressEntity(&addresses[i])
	}
	return out
}

// ToUserEntity converts a user request into a new User entity. The password
// is copied verbatim; hashing is the service's concern. Each contained
// address still needs its owner back-reference set before persisting.
func ToUserEntity(req *UserRequest) *domain.User {
	if req == nil {
		return nil
	}
	addresses := make([]domain.Address, len(req.Addresses))
	for i := range req.Addresses {
		addresses[i] = *ToAddressEntity(&req.Addresses[i])
	}
	return &domain.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
		Addresses:   addresses,
	}
}

// FromUserEntity converts a User entity into its response projection.
// The password never crosses this boundary.
func FromUserEntity(user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FirstName + " " + user.LastName,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
		Addresses:   FromAddressEntities(user.Addresses),
	}
}

// FromUserEntities maps a slice of users, preserving order
func FromUserEntities(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = *FromUserEntity(&users[i])
	}
	return out
}

func toTagEntities(tags []string) []domain.AddressTag {
	out := make([]domain.AddressTag, len(tags))
	for i, tag := range tags {
		out[i] = domain.AddressTag{TagName: tag}
	}
	return out
}

func fromTagEntities(tags []domain.AddressTag) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.TagName
	}
	return out
}
