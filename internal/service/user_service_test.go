package service

import (
	"context"
	"testing"

	"addressbook/internal/domain"
	"addressbook/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(store *fakeStore) UserService {
	return NewUserService(store.userRepo(), store.addressRepo())
}

func userRequest(email string) *dto.UserRequest {
	return &dto.UserRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "5551234567",
		Email:       email,
		Password:    "s3cret-pass",
		Addresses: []dto.AddressRequest{
			{
				Street:  "100 Congress Ave",
				City:    "Austin",
				State:   "Texas",
				ZipCode: "78701",
				Country: "USA",
				Tags:    []string{"home"},
			},
		},
	}
}

func TestCreateUserThenGetRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, userRequest("ada@example.com"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, "Ada Lovelace", got.FullName)
	assert.Equal(t, "5551234567", got.PhoneNumber)
	assert.Equal(t, "ada@example.com", got.Email)
	require.Len(t, got.Addresses, 1)
	assert.Equal(t, "100 Congress Ave", got.Addresses[0].Street)
	assert.Equal(t, []string{"home"}, got.Addresses[0].Tags)
}

func TestCreateUserHashesPassword(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store)

	created, err := svc.CreateUser(context.Background(), userRequest("ada@example.com"))
	require.NoError(t, err)

	stored := store.users[created.ID]
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := newUserService(newFakeStore())

	_, err := svc.UpdateUser(context.Background(), 42, userRequest("ada@example.com"))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUserReplacesAddressCollection(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, userRequest("ada@example.com"))
	require.NoError(t, err)
	oldAddressID := created.Addresses[0].ID

	update := userRequest("ada@example.com")
	update.Addresses = []dto.AddressRequest{
		{
			Street:  "1 Market St",
			City:    "San Francisco",
			State:   "California",
			ZipCode: "94105",
			Country: "USA",
		},
	}
	updated, err := svc.UpdateUser(ctx, created.ID, update)
	require.NoError(t, err)
	require.Len(t, updated.Addresses, 1)
	assert.Equal(t, "1 Market St", updated.Addresses[0].Street)

	// The address missing from the new payload is gone for good
	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Addresses, 1)
	assert.NotEqual(t, oldAddressID, got.Addresses[0].ID)
	_, ok := store.addresses[oldAddressID]
	assert.False(t, ok)
}

func TestUpdateUserKeepsAddressesWhenSaveFails(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, userRequest("ada@example.com"))
	require.NoError(t, err)
	oldAddressID := created.Addresses[0].ID

	update := userRequest("taken@example.com")
	update.Addresses = []dto.AddressRequest{
		{Street: "1 Market St", City: "San Francisco", State: "California", ZipCode: "94105", Country: "USA"},
	}
	store.saveErr = domain.ErrConflict
	_, err = svc.UpdateUser(ctx, created.ID, update)
	assert.ErrorIs(t, err, domain.ErrConflict)
	store.saveErr = nil

	// The failed update must not have eaten the old collection
	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Addresses, 1)
	assert.Equal(t, oldAddressID, got.Addresses[0].ID)
	assert.Equal(t, "100 Congress Ave", got.Addresses[0].Street)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := newUserService(newFakeStore())
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 7), domain.ErrUserNotFound)
}

func TestDeleteUserCascadesAddresses(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, userRequest("ada@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))

	_, err = svc.GetUserByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, store.addresses)
}

func TestFindUsersByAddressCityDeduplicates(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store)
	ctx := context.Background()

	// One user with two Austin addresses, one user elsewhere
	multi := userRequest("ada@example.com")
	multi.Addresses = append(multi.Addresses, dto.AddressRequest{
		Street:  "200 Guadalupe St",
		City:    "AUSTIN",
		State:   "Texas",
		ZipCode: "78701",
		Country: "USA",
	})
	austinite, err := svc.CreateUser(ctx, multi)
	require.NoError(t, err)

	other := userRequest("bob@example.com")
	other.FirstName = "Bob"
	other.Addresses[0].City = "Denver"
	other.Addresses[0].State = "Colorado"
	_, err = svc.CreateUser(ctx, other)
	require.NoError(t, err)

	// Case-insensitive substring match, owner deduplicated
	found, err := svc.FindUsersByAddressCity(ctx, "austin")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, austinite.ID, found[0].ID)

	found, err = svc.FindUsersByAddressCity(ctx, "aus")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestFindUsersByAddressCityAndState(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, userRequest("ada@example.com"))
	require.NoError(t, err)

	found, err := svc.FindUsersByAddressCityAndState(ctx, "austin", "texas")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = svc.FindUsersByAddressCityAndState(ctx, "austin", "colorado")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = svc.FindUsersByAddressCityOrState(ctx, "denver", "texas")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestAuthenticate(t *testing.T) {
	store := newFakeStore()
	svc := newUserService(store)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, userRequest("ada@example.com"))
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = svc.Authenticate(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
