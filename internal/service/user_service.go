package service

import (
	"context"
	"errors"

	"addressbook/internal/domain"
	"addressbook/internal/dto"
	"addressbook/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserService orchestrates user CRUD and the address-based user search.
// Unlike the address service it works on DTOs directly, because user
// operations need the password consumed and the nested address collection
// wired to its owner before anything is persisted.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUserByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req *dto.UserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error

	FindUsersByAddressCity(ctx context.Context, city string) ([]dto.UserResponse, error)
	FindUsersByAddressState(ctx context.Context, state string) ([]dto.UserResponse, error)
	FindUsersByAddressCityAndState(ctx context.Context, city, state string) ([]dto.UserResponse, error)
	FindUsersByAddressCityOrState(ctx context.Context, city, state string) ([]dto.UserResponse, error)

	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

type userService struct {
	users     repository.UserRepository
	addresses repository.AddressRepository
}

// NewUserService creates the user service
func NewUserService(users repository.UserRepository, addresses repository.AddressRepository) UserService {
	return &userService{users: users, addresses: addresses}
}

// GetAllUsers returns every user mapped to its response projection
func (s *userService) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromUserEntities(users), nil
}

// GetUserByID returns one mapped user or domain.ErrUserNotFound
func (s *userService) GetUserByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromUserEntity(user), nil
}

// CreateUser converts the request to an entity, hashes the password and
// persists the user together with its addresses. GORM fills each address's
// owner back-reference during the association insert.
func (s *userService) CreateUser(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error) {
	user := dto.ToUserEntity(req)

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hash)

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("user created")
	return dto.FromUserEntity(user), nil
}

// UpdateUser overwrites every field of an existing user and replaces its
// address collection wholesale: addresses missing from the new payload are
// deleted, the ones in the payload are inserted fresh.
func (s *userService) UpdateUser(ctx context.Context, id uint, req *dto.UserRequest) (*dto.UserResponse, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := dto.ToUserEntity(req)
	existing.FirstName = details.FirstName
	existing.LastName = details.LastName
	existing.PhoneNumber = details.PhoneNumber
	existing.Email = details.Email

	hash, err := bcrypt.GenerateFromPassword([]byte(details.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	existing.Password = string(hash)

	// Replace the owned collection with the owner back-reference set. The
	// repository clears and re-inserts in one transaction, so a failed save
	// cannot leave the user without its old addresses.
	existing.Addresses = details.Addresses
	for i := range existing.Addresses {
		existing.Addresses[i].UserID = id
	}

	if err := s.users.SaveReplacingAddresses(ctx, existing); err != nil {
		return nil, err
	}
	logrus.WithField("user_id", id).Info("user updated")
	return dto.FromUserEntity(existing), nil
}

// DeleteUser removes a user and, through the cascade, all owned addresses
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	exists, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}
	logrus.WithField("user_id", id).Info("user deleted")
	return nil
}

func (s *userService) FindUsersByAddressCity(ctx context.Context, city string) ([]dto.UserResponse, error) {
	addresses, err := s.addresses.FindByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	return s.distinctOwners(ctx, addresses)
}

func (s *userService) FindUsersByAddressState(ctx context.Context, state string) ([]dto.UserResponse, error) {
	addresses, err := s.addresses.FindByState(ctx, state)
	if err != nil {
		return nil, err
	}
	return s.distinctOwners(ctx, addresses)
}

func (s *userService) FindUsersByAddressCityAndState(ctx context.Context, city, state string) ([]dto.UserResponse, error) {
	addresses, err := s.addresses.FindByCityAndState(ctx, city, state)
	if err != nil {
		return nil, err
	}
	return s.distinctOwners(ctx, addresses)
}

func (s *userService) FindUsersByAddressCityOrState(ctx context.Context, city, state string) ([]dto.UserResponse, error) {
	addresses, err := s.addresses.FindByCityOrState(ctx, city, state)
	if err != nil {
		return nil, err
	}
	return s.distinctOwners(ctx, addresses)
}

// distinctOwners deduplicates the matching addresses down to the set of
// owning users, re-fetches each full user and maps it. A user with several
// matching addresses appears once. Result order is unspecified.
func (s *userService) distinctOwners(ctx context.Context, addresses []domain.Address) ([]dto.UserResponse, error) {
	seen := make(map[uint]struct{}, len(addresses))
	out := make([]dto.UserResponse, 0, len(addresses))
	for _, address := range addresses {
		if _, ok := seen[address.UserID]; ok {
			continue
		}
		seen[address.UserID] = struct{}{}

		user, err := s.users.FindByID(ctx, address.UserID)
		if errors.Is(err, domain.ErrUserNotFound) {
			// Owner vanished between the two queries; skip it
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *dto.FromUserEntity(user))
	}
	logrus.WithField("count", len(out)).Debug("distinct users from matching addresses")
	return out, nil
}

// Authenticate checks the credentials and returns the matching user.
// Both unknown emails and wrong passwords come back as ErrInvalidCredentials.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
