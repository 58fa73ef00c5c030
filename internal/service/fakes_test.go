package service

import (
	"context"
	"strings"

	"addressbook/internal/domain"
)

// fakeStore is an in-memory stand-in for both repositories so the services
// can be exercised without a database. It mimics the storage semantics the
// GORM layer provides: generated ids, owner back-references on association
// insert and cascading deletes.
type fakeStore struct {
	users         map[uint]domain.User
	addresses     map[uint]domain.Address
	nextUserID    uint
	nextAddressID uint
	saveErr       error // When set, the replacing save fails without mutating anything
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[uint]domain.User),
		addresses: make(map[uint]domain.Address),
	}
}

func (f *fakeStore) userRepo() *fakeUserRepo       { return &fakeUserRepo{f} }
func (f *fakeStore) addressRepo() *fakeAddressRepo { return &fakeAddressRepo{f} }

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.s.users))
	for id := range r.s.users {
		user, _ := r.FindByID(ctx, id)
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	stored, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := stored
	user.Addresses = nil
	for _, address := range r.s.addresses {
		if address.UserID == id {
			user.Addresses = append(user.Addresses, address)
		}
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) Save(_ context.Context, user *domain.User) error {
	if user.ID == 0 {
		r.s.nextUserID++
		user.ID = r.s.nextUserID
	}
	stored := *user
	stored.Addresses = nil
	r.s.users[user.ID] = stored
	for i := range user.Addresses {
		if user.Addresses[i].ID == 0 {
			r.s.nextAddressID++
			user.Addresses[i].ID = r.s.nextAddressID
		}
		user.Addresses[i].UserID = user.ID
		r.s.addresses[user.Addresses[i].ID] = user.Addresses[i]
	}
	return nil
}

// SaveReplacingAddresses mirrors the transactional swap: on failure the
// stored state is untouched, as if rolled back
func (r *fakeUserRepo) SaveReplacingAddresses(ctx context.Context, user *domain.User) error {
	if r.s.saveErr != nil {
		return r.s.saveErr
	}
	for id, address := range r.s.addresses {
		if address.UserID == user.ID {
			delete(r.s.addresses, id)
		}
	}
	return r.Save(ctx, user)
}

func (r *fakeUserRepo) DeleteByID(_ context.Context, id uint) error {
	delete(r.s.users, id)
	for addressID, address := range r.s.addresses {
		if address.UserID == id {
			delete(r.s.addresses, addressID)
		}
	}
	return nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	_, ok := r.s.users[id]
	return ok, nil
}

type fakeAddressRepo struct{ s *fakeStore }

func (r *fakeAddressRepo) FindAll(context.Context) ([]domain.Address, error) {
	out := make([]domain.Address, 0, len(r.s.addresses))
	for _, address := range r.s.addresses {
		out = append(out, address)
	}
	return out, nil
}

func (r *fakeAddressRepo) FindByID(_ context.Context, id uint) (*domain.Address, error) {
	address, ok := r.s.addresses[id]
	if !ok {
		return nil, domain.ErrAddressNotFound
	}
	a := address
	return &a, nil
}

func (r *fakeAddressRepo) Save(_ context.Context, address *domain.Address) error {
	if address.ID == 0 {
		r.s.nextAddressID++
		address.ID = r.s.nextAddressID
	}
	for i := range address.Tags {
		address.Tags[i].AddressID = address.ID
	}
	r.s.addresses[address.ID] = *address
	return nil
}

// SaveReplacingTags mirrors the transactional swap: on failure the stored
// state is untouched, as if rolled back
func (r *fakeAddressRepo) SaveReplacingTags(ctx context.Context, address *domain.Address) error {
	if r.s.saveErr != nil {
		return r.s.saveErr
	}
	return r.Save(ctx, address)
}

func (r *fakeAddressRepo) DeleteByID(_ context.Context, id uint) error {
	delete(r.s.addresses, id)
	return nil
}

func (r *fakeAddressRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	_, ok := r.s.addresses[id]
	return ok, nil
}

func (r *fakeAddressRepo) match(pred func(domain.Address) bool) []domain.Address {
	var out []domain.Address
	for _, address := range r.s.addresses {
		if pred(address) {
			out = append(out, address)
		}
	}
	return out
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (r *fakeAddressRepo) FindByCity(_ context.Context, city string) ([]domain.Address, error) {
	return r.match(func(a domain.Address) bool { return contains(a.City, city) }), nil
}

func (r *fakeAddressRepo) FindByState(_ context.Context, state string) ([]domain.Address, error) {
	return r.match(func(a domain.Address) bool { return contains(a.State, state) }), nil
}

func (r *fakeAddressRepo) FindByCityAndState(_ context.Context, city, state string) ([]domain.Address, error) {
	return r.match(func(a domain.Address) bool {
		return contains(a.City, city) && contains(a.State, state)
	}), nil
}

func (r *fakeAddressRepo) FindByCityOrState(_ context.Context, city, state string) ([]domain.Address, error) {
	return r.match(func(a domain.Address) bool {
		return contains(a.City, city) || contains(a.State, state)
	}), nil
}
