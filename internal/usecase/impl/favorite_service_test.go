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

type favoriteFixture struct {
	store    *fakeStore
	svc      usecase.FavoriteUsecase
	customer uuid.UUID
	merchant *entity.Account
}

func newFavoriteFixture(t *testing.T) *favoriteFixture {
	t.Helper()
	store := newFakeStore()

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
	require.NoError(t, store.accounts.Create(context.Background(), merchant))

	svc := NewFavoriteService(FavoriteServiceParams{
		TxManager:    store,
		AccountRepo:  store.accounts,
		FavoriteRepo: store.favorites,
	})

	return &favoriteFixture{store: store, svc: svc, customer: uuid.New(), merchant: merchant}
}

func TestFavoriteService_Toggle_AddsAndRemoves(t *testing.T) {
	fix := newFavoriteFixture(t)
	ctx := context.Background()

	nowFavorite, err := fix.svc.Toggle(ctx, fix.customer, fix.merchant.ID)
	require.NoError(t, err)
	assert.True(t, nowFavorite)

	favorites, err := fix.svc.ListFavorites(ctx, fix.customer)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Pizzería Doña Rosa", favorites[0].StoreName)
	assert.Equal(t, "10:00", favorites[0].OpensAt)

	nowFavorite, err = fix.svc.Toggle(ctx, fix.customer, fix.merchant.ID)
	require.NoError(t, err)
	assert.False(t, nowFavorite)

	favorites, err = fix.svc.ListFavorites(ctx, fix.customer)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoriteService_Toggle_DoubleToggleRestoresMembership(t *testing.T) {
	fix := newFavoriteFixture(t)
	ctx := context.Background()

	_, err := fix.svc.Toggle(ctx, fix.customer, fix.merchant.ID)
	require.NoError(t, err)

	// Off and on again: exactly one favorite, never two.
	_, err = fix.svc.Toggle(ctx, fix.customer, fix.merchant.ID)
	require.NoError(t, err)
	_, err = fix.svc.Toggle(ctx, fix.customer, fix.merchant.ID)
	require.NoError(t, err)

	favorites, err := fix.svc.ListFavorites(ctx, fix.customer)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestFavoriteService_Toggle_TargetMustBeMerchant(t *testing.T) {
	fix := newFavoriteFixture(t)
	ctx := context.Background()

	customer := &entity.Account{
		Email:    "ana@example.com",
		Username: "anaperez",
		Role:     entity.RoleCustomer,
		Active:   true,
	}
	require.NoError(t, fix.store.accounts.Create(ctx, customer))

	_, err := fix.svc.Toggle(ctx, fix.customer, customer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)

	_, err = fix.svc.Toggle(ctx, fix.customer, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestFavoriteService_ListFavorites_SkipsDeletedMerchants(t *testing.T) {
	fix := newFavoriteFixture(t)
	ctx := context.Background()

	_, err := fix.svc.Toggle(ctx, fix.customer, fix.merchant.ID)
	require.NoError(t, err)

	// The merchant account disappears underneath the favorite.
	delete(fix.store.accounts.byID, fix.merchant.ID)

	favorites, err := fix.svc.ListFavorites(ctx, fix.customer)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
