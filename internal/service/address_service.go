package service

import (
	"context"

	"addressbook/internal/domain"
	"addressbook/internal/repository"

	"github.com/sirupsen/logrus"
)

// AddressService orchestrates address CRUD against the repositories.
// It works on entities; DTO mapping happens at the API layer.
type AddressService interface {
	GetAllAddresses(ctx context.Context) ([]domain.Address, error)
	GetAddressByID(ctx context.Context, id uint) (*domain.Address, error)
	CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	UpdateAddress(ctx context.Context, id uint, details *domain.Address) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id uint) error
}

type addressService struct {
	addresses repository.AddressRepository
	users     repository.UserRepository
}

// NewAddressService creates the address service
func NewAddressService(addresses repository.AddressRepository, users repository.UserRepository) AddressService {
	return &addressService{addresses: addresses, users: users}
}

// GetAllAddresses returns every address in repository order
func (s *addressService) GetAllAddresses(ctx context.Context) ([]domain.Address, error) {
	return s.addresses.FindAll(ctx)
}

// GetAddressByID returns one address or domain.ErrAddressNotFound
func (s *addressService) GetAddressByID(ctx context.Context, id uint) (*domain.Address, error) {
	return s.addresses.FindByID(ctx, id)
}

// CreateAddress persists a new address after checking its owner exists.
// Addresses cannot exist without an owning user.
func (s *addressService) CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	exists, err := s.users.ExistsByID(ctx, address.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		logrus.WithField("user_id", address.UserID).Warn("create address for missing user")
		return nil, domain.ErrUserNotFound
	}
	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, err
	}
	logrus.WithField("address_id", address.ID).Info("address created")
	return address, nil
}

// UpdateAddress overwrites every mutable field of an existing address with
// the given details (full replace, not patch). The tag collection is
// replaced wholesale.
func (s *addressService) UpdateAddress(ctx context.Context, id uint, details *domain.Address) (*domain.Address, error) {
	existing, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.AddressLine1 = details.AddressLine1
	existing.AddressLine2 = details.AddressLine2
	existing.City = details.City
	existing.State = details.State
	existing.ZipCode = details.ZipCode
	existing.Country = details.Country
	if details.UserID != 0 && details.UserID != existing.UserID {
		exists, err := s.users.ExistsByID(ctx, details.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrUserNotFound
		}
		existing.UserID = details.UserID
	}

	// The tag collection is swapped inside one repository transaction, so a
	// failed save cannot strip the old tags
	existing.Tags = make([]domain.AddressTag, len(details.Tags))
	for i, tag := range details.Tags {
		existing.Tags[i] = domain.AddressTag{AddressID: id, TagName: tag.TagName}
	}

	if err := s.addresses.SaveReplacingTags(ctx, existing); err != nil {
		return nil, err
	}
	logrus.WithField("address_id", id).Info("address updated")
	return existing, nil
}

// DeleteAddress removes an address or fails with domain.ErrAddressNotFound
func (s *addressService) DeleteAddress(ctx context.Context, id uint) error {
	exists, err := s.addresses.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrAddressNotFound
	}
	if err := s.addresses.DeleteByID(ctx, id); err != nil {
		return err
	}
	logrus.WithField("address_id", id).Info("address deleted")
	return nil
}
