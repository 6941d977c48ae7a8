package impl

import (
	"context"
	"testing"

	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T) (*fakeStore, usecase.ProfileUsecase) {
	t.Helper()
	store := newFakeStore()
	svc := NewProfileService(ProfileServiceParams{AccountRepo: store.accounts})

	return store, svc
}

func TestProfileService_UpdatePersonProfile_KeepsCredential(t *testing.T) {
	store, svc := newProfileFixture(t)
	ctx := context.Background()

	customer := &entity.Account{
		Email:        "ana@example.com",
		Username:     "anaperez",
		PasswordHash: "hashed:ClaveSegura123!",
		Role:         entity.RoleCustomer,
		Active:       true,
		Name:         "Ana",
	}
	require.NoError(t, store.accounts.Create(ctx, customer))

	updated, err := svc.UpdatePersonProfile(ctx, customer.ID, usecase.UpdatePersonProfileInput{
		Name:     "Ana María",
		LastName: "Pérez",
		Phone:    "809-555-0101",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)

	// A profile edit never touches email, username or the stored hash.
	stored, err := store.accounts.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", stored.Email)
	assert.Equal(t, "anaperez", stored.Username)
	assert.Equal(t, "hashed:ClaveSegura123!", stored.PasswordHash)
}

func TestProfileService_UpdatePersonProfile_RejectsMerchants(t *testing.T) {
	store, svc := newProfileFixture(t)
	ctx := context.Background()

	merchant := &entity.Account{
		Email:    "rosa@example.com",
		Username: "rosa@example.com",
		Role:     entity.RoleMerchant,
		Active:   true,
		MerchantProfile: &entity.MerchantProfile{
			StoreName:      "Pizzería Doña Rosa",
			BusinessTypeID: uuid.New(),
		},
	}
	require.NoError(t, store.accounts.Create(ctx, merchant))

	_, err := svc.UpdatePersonProfile(ctx, merchant.ID, usecase.UpdatePersonProfileInput{Name: "X"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_UpdateMerchantProfile_UpdatesStorefront(t *testing.T) {
	store, svc := newProfileFixture(t)
	ctx := context.Background()

	merchant := &entity.Account{
		Email:    "rosa@example.com",
		Username: "rosa@example.com",
		Role:     entity.RoleMerchant,
		Active:   true,
		MerchantProfile: &entity.MerchantProfile{
			StoreName:      "Pizzería Doña Rosa",
			OpensAt:        "10:00",
			ClosesAt:       "22:00",
			BusinessTypeID: uuid.New(),
		},
	}
	require.NoError(t, store.accounts.Create(ctx, merchant))

	updated, err := svc.UpdateMerchantProfile(ctx, merchant.ID, usecase.UpdateMerchantProfileInput{
		StoreName: "Pizzería Rosa Gourmet",
		Phone:     "809-555-0202",
		OpensAt:   "09:00",
		ClosesAt:  "23:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pizzería Rosa Gourmet", updated.MerchantProfile.StoreName)
	assert.Equal(t, "09:00", updated.MerchantProfile.OpensAt)
}

func TestProfileService_UpdateMerchantProfile_RejectsOtherRoles(t *testing.T) {
	store, svc := newProfileFixture(t)
	ctx := context.Background()

	customer := &entity.Account{
		Email:    "ana@example.com",
		Username: "anaperez",
		Role:     entity.RoleCustomer,
		Active:   true,
	}
	require.NoError(t, store.accounts.Create(ctx, customer))

	_, err := svc.UpdateMerchantProfile(ctx, customer.ID, usecase.UpdateMerchantProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_GetProfile_UnknownAccount(t *testing.T) {
	_, svc := newProfileFixture(t)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
