package repository

import (
	"context"
	"errors"

	"addressbook/internal/domain"

	"gorm.io/gorm"
)

// UserRepository is the persistence gateway for User rows
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	SaveReplacingAddresses(ctx context.Context, user *domain.User) error
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a GORM-backed user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindAll returns every user with addresses and tags preloaded
func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Preload("Addresses.Tags").Preload("Addresses").Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

// FindByID returns one user or domain.ErrUserNotFound
func (r *userRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Addresses.Tags").Preload("Addresses").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// FindByEmail returns one user by email or domain.ErrUserNotFound
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// Save inserts the user if its ID is zero, otherwise updates it in place.
// New contained addresses (and their tags) are inserted along with the user.
func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	return translateError(r.db.WithContext(ctx).Save(user).Error)
}

// SaveReplacingAddresses updates the user and swaps its owned address
// collection in a single transaction: the old rows are deleted and the ones
// in user.Addresses inserted, so a failing save leaves the old collection
// untouched
func (r *userRepository) SaveReplacingAddresses(ctx context.Context, user *domain.User) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&domain.Address{}).Error; err != nil {
			return err
		}
		return tx.Save(user).Error
	}))
}

// DeleteByID removes a user; owned addresses and tags go with it via the
// ON DELETE CASCADE constraints created at migration time
func (r *userRepository) DeleteByID(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Delete(&domain.User{}, id).Error)
}

// ExistsByID reports whether a user row with the given id exists
func (r *userRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
