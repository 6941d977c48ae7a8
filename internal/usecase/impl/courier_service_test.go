package impl

import (
	"context"
	"testing"

	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type courierFixture struct {
	store   *fakeStore
	svc     usecase.CourierUsecase
	courier *entity.Account
	order   *entity.Order
}

// newCourierFixture seeds a courier mid-delivery: assigned to an
// in-progress order and flagged unavailable.
func newCourierFixture(t *testing.T) *courierFixture {
	t.Helper()
	ctx := context.Background()
	store := newFakeStore()

	courier := &entity.Account{
		Email:          "pedro@example.com",
		Username:       "pedrodelivery",
		Role:           entity.RoleCourier,
		Active:         true,
		CourierProfile: &entity.CourierProfile{Available: false},
	}
	require.NoError(t, store.accounts.Create(ctx, courier))

	courierID := courier.ID
	order := &entity.Order{
		CustomerID: uuid.New(),
		MerchantID: uuid.New(),
		CourierID:  &courierID,
		Subtotal:   decimal.NewFromInt(150),
		TaxRate:    decimal.NewFromInt(18),
		Tax:        decimal.NewFromInt(27),
		Total:      decimal.NewFromInt(177),
		Status:     entity.OrderStatusInProgress,
	}
	require.NoError(t, store.orders.Create(ctx, order))

	svc := NewCourierService(CourierServiceParams{
		TxManager: store,
		OrderRepo: store.orders,
		Logger:    newDiscardLogger(),
	})

	return &courierFixture{store: store, svc: svc, courier: courier, order: order}
}

func TestCourierService_CompleteDelivery_FreesCourier(t *testing.T) {
	fix := newCourierFixture(t)
	ctx := context.Background()

	completed, err := fix.svc.CompleteDelivery(ctx, fix.courier.ID, fix.order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, completed.Status)

	stored, err := fix.store.accounts.FindByID(ctx, fix.courier.ID)
	require.NoError(t, err)
	assert.True(t, stored.CourierProfile.Available)
}

func TestCourierService_CompleteDelivery_OnlyAssignedCourier(t *testing.T) {
	fix := newCourierFixture(t)
	ctx := context.Background()

	_, err := fix.svc.CompleteDelivery(ctx, uuid.New(), fix.order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	stored, err := fix.store.orders.FindByID(ctx, fix.order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, stored.Status)
}

func TestCourierService_CompleteDelivery_AlreadyCompleted(t *testing.T) {
	fix := newCourierFixture(t)
	ctx := context.Background()

	_, err := fix.svc.CompleteDelivery(ctx, fix.courier.ID, fix.order.ID)
	require.NoError(t, err)

	_, err = fix.svc.CompleteDelivery(ctx, fix.courier.ID, fix.order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCourierService_GetOrder_ScopedToAssignedCourier(t *testing.T) {
	fix := newCourierFixture(t)
	ctx := context.Background()

	got, err := fix.svc.GetOrder(ctx, fix.courier.ID, fix.order.ID)
	require.NoError(t, err)
	assert.Equal(t, fix.order.ID, got.ID)

	_, err = fix.svc.GetOrder(ctx, uuid.New(), fix.order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCourierService_ListOrders_OnlyAssigned(t *testing.T) {
	fix := newCourierFixture(t)
	ctx := context.Background()

	unassigned := &entity.Order{
		CustomerID: uuid.New(),
		MerchantID: uuid.New(),
		Status:     entity.OrderStatusPending,
	}
	require.NoError(t, fix.store.orders.Create(ctx, unassigned))

	orders, err := fix.svc.ListOrders(ctx, fix.courier.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, fix.order.ID, orders[0].ID)
}
