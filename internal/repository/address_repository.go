package repository

import (
	"context"
	"errors"
	"strings"

	"addressbook/internal/domain"

	"gorm.io/gorm"
)

// AddressRepository is the persistence gateway for Address rows
type AddressRepository interface {
	FindAll(ctx context.Context) ([]domain.Address, error)
	FindByID(ctx context.Context, id uint) (*domain.Address, error)
	Save(ctx context.Context, address *domain.Address) error
	SaveReplacingTags(ctx context.Context, address *domain.Address) error
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Location search, case-insensitive substring match, unordered results
	FindByCity(ctx context.Context, city string) ([]domain.Address, error)
	FindByState(ctx context.Context, state string) ([]domain.Address, error)
	FindByCityAndState(ctx context.Context, city, state string) ([]domain.Address, error)
	FindByCityOrState(ctx context.Context, city, state string) ([]domain.Address, error)
}

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a GORM-backed address repository
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

// likePattern builds the case-insensitive substring pattern for LIKE queries
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// FindAll returns every address with its tags preloaded
func (r *addressRepository) FindAll(ctx context.Context) ([]domain.Address, error) {
	var addresses []domain.Address
	if err := r.db.WithContext(ctx).Preload("Tags").Find(&addresses).Error; err != nil {
		return nil, translateError(err)
	}
	return addresses, nil
}

// FindByID returns one address or domain.ErrAddressNotFound
func (r *addressRepository) FindByID(ctx context.Context, id uint) (*domain.Address, error) {
	var address domain.Address
	err := r.db.WithContext(ctx).Preload("Tags").First(&address, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAddressNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &address, nil
}

// Save inserts the address if its ID is zero, otherwise updates it in place
func (r *addressRepository) Save(ctx context.Context, address *domain.Address) error {
	return translateError(r.db.WithContext(ctx).Save(address).Error)
}

// SaveReplacingTags updates the address and swaps its tag collection in a
// single transaction, so a failing save leaves the old tags untouched
func (r *addressRepository) SaveReplacingTags(ctx context.Context, address *domain.Address) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("address_id = ?", address.ID).Delete(&domain.AddressTag{}).Error; err != nil {
			return err
		}
		return tx.Save(address).Error
	}))
}

// DeleteByID removes a single address; its tags go via FK cascade
func (r *addressRepository) DeleteByID(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Delete(&domain.Address{}, id).Error)
}

// ExistsByID reports whether an address row with the given id exists
func (r *addressRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Address{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *addressRepository) FindByCity(ctx context.Context, city string) ([]domain.Address, error) {
	var addresses []domain.Address
	err := r.db.WithContext(ctx).Where("LOWER(city) LIKE ?", likePattern(city)).Find(&addresses).Error
	if err != nil {
		return nil, translateError(err)
	}
	return addresses, nil
}

func (r *addressRepository) FindByState(ctx context.Context, state string) ([]domain.Address, error) {
	var addresses []domain.Address
	err := r.db.WithContext(ctx).Where("LOWER(state) LIKE ?", likePattern(state)).Find(&addresses).Error
	if err != nil {
		return nil, translateError(err)
	}
	return addresses, nil
}

func (r *addressRepository) FindByCityAndState(ctx context.Context, city, state string) ([]domain.Address, error) {
	var addresses []domain.Address
	err := r.db.WithContext(ctx).
		Where("LOWER(city) LIKE ? AND LOWER(state) LIKE ?", likePattern(city), likePattern(state)).
		Find(&addresses).Error
	if err != nil {
		return nil, translateError(err)
	}
	return addresses, nil
}

func (r *addressRepository) FindByCityOrState(ctx context.Context, city, state string) ([]domain.Address, error) {
	var addresses []domain.Address
	err := r.db.WithContext(ctx).
		Where("LOWER(city) LIKE ? OR LOWER(state) LIKE ?", likePattern(city), likePattern(state)).
		Find(&addresses).Error
	if err != nil {
		return nil, translateError(err)
	}
	return addresses, nil
}
