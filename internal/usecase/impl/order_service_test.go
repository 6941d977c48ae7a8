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

type orderFixture struct {
	store    *fakeStore
	svc      usecase.OrderUsecase
	customer *entity.Account
	merchant *entity.Account
	address  *entity.Address
	pizza    *entity.Product
	soda     *entity.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctx := context.Background()
	store := newFakeStore()

	customer := &entity.Account{
		Email:    "ana@example.com",
		Username: "anaperez",
		Role:     entity.RoleCustomer,
		Active:   true,
	}
	require.NoError(t, store.accounts.Create(ctx, customer))

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

	address := &entity.Address{
		CustomerID:  customer.ID,
		Label:       "Casa",
		Description: "Calle 2 #14, portón verde",
	}
	require.NoError(t, store.addresses.Create(ctx, address))

	pizza := &entity.Product{
		MerchantID: merchant.ID,
		Name:       "Pizza familiar",
		Price:      decimal.NewFromInt(100),
	}
	require.NoError(t, store.products.Create(ctx, pizza))

	soda := &entity.Product{
		MerchantID: merchant.ID,
		Name:       "Refresco 2L",
		Price:      decimal.NewFromInt(50),
	}
	require.NoError(t, store.products.Create(ctx, soda))

	svc := NewOrderService(OrderServiceParams{
		TxManager:    store,
		AccountRepo:  store.accounts,
		ProductRepo:  store.products,
		SettingsRepo: store.settings,
		OrderRepo:    store.orders,
		Logger:       newDiscardLogger(),
	})

	return &orderFixture{
		store:    store,
		svc:      svc,
		customer: customer,
		merchant: merchant,
		address:  address,
		pizza:    pizza,
		soda:     soda,
	}
}

func (fix *orderFixture) cart(ids ...uuid.UUID) usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		CustomerID: fix.customer.ID,
		MerchantID: fix.merchant.ID,
		AddressID:  fix.address.ID,
		ProductIDs: ids,
	}
}

func TestOrderService_PreviewOrder_PricesCartWithDefaultTax(t *testing.T) {
	fix := newOrderFixture(t)

	quote, err := fix.svc.PreviewOrder(context.Background(), fix.cart(fix.pizza.ID, fix.soda.ID))
	require.NoError(t, err)

	// 100 + 50 at 18% ITBIS.
	assert.Equal(t, "150.00", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "27.00", quote.Tax.StringFixed(2))
	assert.Equal(t, "177.00", quote.Total.StringFixed(2))
	assert.True(t, quote.TaxRate.Equal(decimal.NewFromInt(18)))
	assert.Len(t, quote.Items, 2)
}

func TestOrderService_PreviewOrder_ZeroRate(t *testing.T) {
	fix := newOrderFixture(t)
	ctx := context.Background()

	require.NoError(t, fix.store.settings.Update(ctx, &entity.Settings{ID: 1, TaxRate: decimal.Zero}))

	quote, err := fix.svc.PreviewOrder(ctx, fix.cart(fix.pizza.ID))
	require.NoError(t, err)
	assert.Equal(t, "100.00", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", quote.Tax.StringFixed(2))
	assert.True(t, quote.Total.Equal(quote.Subtotal))
}

func TestOrderService_PreviewOrder_RepeatedProductIsTwoLines(t *testing.T) {
	fix := newOrderFixture(t)

	quote, err := fix.svc.PreviewOrder(context.Background(), fix.cart(fix.soda.ID, fix.soda.ID))
	require.NoError(t, err)
	assert.Len(t, quote.Items, 2)
	assert.Equal(t, "100.00", quote.Subtotal.StringFixed(2))
}

func TestOrderService_PreviewOrder_EmptyCart(t *testing.T) {
	fix := newOrderFixture(t)

	_, err := fix.svc.PreviewOrder(context.Background(), fix.cart())
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_PreviewOrder_ForeignProduct(t *testing.T) {
	fix := newOrderFixture(t)
	ctx := context.Background()

	other := &entity.Product{MerchantID: uuid.New(), Name: "Ajeno", Price: decimal.NewFromInt(10)}
	require.NoError(t, fix.store.products.Create(ctx, other))

	_, err := fix.svc.PreviewOrder(ctx, fix.cart(fix.pizza.ID, other.ID))
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_PreviewOrder_InactiveMerchant(t *testing.T) {
	fix := newOrderFixture(t)
	ctx := context.Background()

	fix.merchant.Active = false
	require.NoError(t, fix.store.accounts.Update(ctx, fix.merchant))

	_, err := fix.svc.PreviewOrder(ctx, fix.cart(fix.pizza.ID))
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestOrderService_PlaceOrder_PersistsPendingOrder(t *testing.T) {
	fix := newOrderFixture(t)
	ctx := context.Background()

	order, err := fix.svc.PlaceOrder(ctx, fix.cart(fix.pizza.ID, fix.soda.ID))
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Nil(t, order.CourierID)
	assert.Equal(t, "150.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "27.00", order.Tax.StringFixed(2))
	assert.Equal(t, "177.00", order.Total.StringFixed(2))

	// Address is snapshotted onto the order.
	assert.Equal(t, "Casa", order.AddressLabel)
	assert.Equal(t, "Calle 2 #14, portón verde", order.AddressDescription)

	stored, err := fix.store.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
}

func TestOrderService_PlaceOrder_SnapshotSurvivesCatalogEdits(t *testing.T) {
	fix := newOrderFixture(t)
	ctx := context.Background()

	order, err := fix.svc.PlaceOrder(ctx, fix.cart(fix.pizza.ID))
	require.NoError(t, err)

	// Merchant renames and reprices the product afterwards.
	fix.pizza.Name = "Pizza suprema"
	fix.pizza.Price = decimal.NewFromInt(500)
	require.NoError(t, fix.store.products.Update(ctx, fix.pizza))

	stored, err := fix.svc.GetOrder(ctx, fix.customer.ID, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Pizza familiar", stored.Items[0].Name)
	assert.Equal(t, "100.00", stored.Items[0].Price.StringFixed(2))
	assert.Equal(t, "118.00", stored.Total.StringFixed(2))
}

func TestOrderService_PlaceOrder_ForeignAddress(t *testing.T) {
	fix := newOrderFixture(t)
	ctx := context.Background()

	foreign := &entity.Address{CustomerID: uuid.New(), Label: "Otra"}
	require.NoError(t, fix.store.addresses.Create(ctx, foreign))

	input := fix.cart(fix.pizza.ID)
	input.AddressID = foreign.ID

	_, err := fix.svc.PlaceOrder(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	assert.Empty(t, fix.store.orders.byID)
}

func TestOrderService_PlaceOrder_EmptyCartPersistsNothing(t *testing.T) {
	fix := newOrderFixture(t)

	_, err := fix.svc.PlaceOrder(context.Background(), fix.cart())
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	assert.Empty(t, fix.store.orders.byID)
}

func TestOrderService_GetOrder_ScopedToOwner(t *testing.T) {
	fix := newOrderFixture(t)
	ctx := context.Background()

	order, err := fix.svc.PlaceOrder(ctx, fix.cart(fix.pizza.ID))
	require.NoError(t, err)

	_, err = fix.svc.GetOrder(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
