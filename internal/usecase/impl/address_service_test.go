package impl

import (
	"context"
	"testing"

	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddressFixture(t *testing.T) (*fakeStore, usecase.AddressUsecase) {
	t.Helper()
	store := newFakeStore()
	svc := NewAddressService(AddressServiceParams{AddressRepo: store.addresses})

	return store, svc
}

func TestAddressService_Lifecycle(t *testing.T) {
	_, svc := newAddressFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	address, err := svc.CreateAddress(ctx, customerID, usecase.AddressInput{
		Label:       "Casa",
		Description: "Calle 2 #14, portón verde",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAddress(ctx, customerID, address.ID, usecase.AddressInput{
		Label:       "Oficina",
		Description: "Torre Empresarial, piso 4",
	})
	require.NoError(t, err)
	assert.Equal(t, "Oficina", updated.Label)

	listed, err := svc.ListAddresses(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Oficina", listed[0].Label)

	require.NoError(t, svc.DeleteAddress(ctx, customerID, address.ID))

	listed, err = svc.ListAddresses(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestAddressService_ForeignAddressIsNotFound(t *testing.T) {
	_, svc := newAddressFixture(t)
	ctx := context.Background()
	owner := uuid.New()

	address, err := svc.CreateAddress(ctx, owner, usecase.AddressInput{Label: "Casa"})
	require.NoError(t, err)

	intruder := uuid.New()

	_, err = svc.GetAddress(ctx, intruder, address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)

	_, err = svc.UpdateAddress(ctx, intruder, address.ID, usecase.AddressInput{Label: "X"})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)

	err = svc.DeleteAddress(ctx, intruder, address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)

	// The owner still sees it untouched.
	got, err := svc.GetAddress(ctx, owner, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Casa", got.Label)
}
