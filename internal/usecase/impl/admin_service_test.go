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

type adminFixture struct {
	store *fakeStore
	svc   usecase.AdminUsecase
	admin *entity.Account
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	store := newFakeStore()

	admin := &entity.Account{
		Email:    "admin@appcenar.com",
		Username: "admin",
		Role:     entity.RoleAdmin,
		Active:   true,
		Name:     "Root",
	}
	require.NoError(t, store.accounts.Create(context.Background(), admin))

	svc := NewAdminService(AdminServiceParams{
		TxManager:        store,
		AccountRepo:      store.accounts,
		OrderRepo:        store.orders,
		ProductRepo:      store.products,
		BusinessTypeRepo: store.businessTypes,
		SettingsRepo:     store.settings,
		Hasher:           fakeHasher{},
		Logger:           newDiscardLogger(),
	})

	return &adminFixture{store: store, svc: svc, admin: admin}
}

func adminInput(email, username string) usecase.CreateAdminInput {
	return usecase.CreateAdminInput{
		Name:            "Julia",
		LastName:        "Gómez",
		NationalID:      "001-1234567-8",
		Email:           email,
		Username:        username,
		Password:        "ClaveSegura123!",
		PasswordConfirm: "ClaveSegura123!",
	}
}

func TestAdminService_Dashboard_CountsPerRole(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	customer := &entity.Account{
		Email: "ana@example.com", Username: "anaperez",
		Role: entity.RoleCustomer, Active: true,
	}
	require.NoError(t, fix.store.accounts.Create(ctx, customer))
	inactive := &entity.Account{
		Email: "luis@example.com", Username: "luis",
		Role: entity.RoleCustomer, Active: false,
	}
	require.NoError(t, fix.store.accounts.Create(ctx, inactive))

	merchantID := uuid.New()
	require.NoError(t, fix.store.products.Create(ctx, &entity.Product{
		MerchantID: merchantID, Name: "Pizza", Price: decimal.NewFromInt(100),
	}))
	require.NoError(t, fix.store.orders.Create(ctx, &entity.Order{
		CustomerID: customer.ID, MerchantID: merchantID, Status: entity.OrderStatusPending,
	}))

	stats, err := fix.svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.OrdersTotal)
	assert.Equal(t, int64(1), stats.OrdersToday)
	assert.Equal(t, int64(1), stats.Products)
	assert.Equal(t, int64(1), stats.Customers.Active)
	assert.Equal(t, int64(1), stats.Customers.Inactive)
	assert.Equal(t, int64(0), stats.Merchants.Active)
}

func TestAdminService_ListAccounts_MerchantFigures(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	merchant := &entity.Account{
		Email: "rosa@example.com", Username: "rosa@example.com",
		Role: entity.RoleMerchant, Active: true,
		MerchantProfile: &entity.MerchantProfile{StoreName: "Pizzería", BusinessTypeID: uuid.New()},
	}
	require.NoError(t, fix.store.accounts.Create(ctx, merchant))
	require.NoError(t, fix.store.products.Create(ctx, &entity.Product{
		MerchantID: merchant.ID, Name: "Pizza", Price: decimal.NewFromInt(100),
	}))
	require.NoError(t, fix.store.orders.Create(ctx, &entity.Order{
		CustomerID: uuid.New(), MerchantID: merchant.ID, Status: entity.OrderStatusPending,
	}))

	listings, err := fix.svc.ListAccounts(ctx, entity.RoleMerchant)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, int64(1), listings[0].OrderCount)
	assert.Equal(t, int64(1), listings[0].ProductCount)
}

func TestAdminService_ListAccounts_UnknownRole(t *testing.T) {
	fix := newAdminFixture(t)

	_, err := fix.svc.ListAccounts(context.Background(), entity.Role("supervisor"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_ToggleActive_FlipsFlag(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	customer := &entity.Account{
		Email: "ana@example.com", Username: "anaperez",
		Role: entity.RoleCustomer, Active: true,
	}
	require.NoError(t, fix.store.accounts.Create(ctx, customer))

	toggled, err := fix.svc.ToggleActive(ctx, fix.admin.ID, customer.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	toggled, err = fix.svc.ToggleActive(ctx, fix.admin.ID, customer.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Active)
}

func TestAdminService_ToggleActive_RejectsSelf(t *testing.T) {
	fix := newAdminFixture(t)

	_, err := fix.svc.ToggleActive(context.Background(), fix.admin.ID, fix.admin.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfEdit)
}

func TestAdminService_CreateAdmin_BornActive(t *testing.T) {
	fix := newAdminFixture(t)

	created, err := fix.svc.CreateAdmin(context.Background(), adminInput("julia@appcenar.com", "julia"))
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.Equal(t, "hashed:ClaveSegura123!", created.PasswordHash)
	assert.Empty(t, created.ActivationToken)
}

func TestAdminService_CreateAdmin_NormalizesIdentifiers(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	created, err := fix.svc.CreateAdmin(ctx, adminInput(" Julia@AppCenar.com ", " julia "))
	require.NoError(t, err)
	assert.Equal(t, "julia@appcenar.com", created.Email)
	assert.Equal(t, "julia", created.Username)

	// The stored identifiers answer to the same login path as self-registered
	// accounts.
	found, err := fix.store.accounts.FindByLogin(ctx, "julia@appcenar.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestAdminService_UpdateAdmin_NormalizesIdentifiers(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	target, err := fix.svc.CreateAdmin(ctx, adminInput("julia@appcenar.com", "julia"))
	require.NoError(t, err)

	updated, err := fix.svc.UpdateAdmin(ctx, fix.admin.ID, target.ID, usecase.UpdateAdminInput{
		Name:       "Julia",
		LastName:   "Gómez",
		NationalID: "001-1234567-8",
		Email:      " Julia.Gomez@AppCenar.com ",
		Username:   " juliag ",
	})
	require.NoError(t, err)
	assert.Equal(t, "julia.gomez@appcenar.com", updated.Email)
	assert.Equal(t, "juliag", updated.Username)
}

func TestAdminService_CreateAdmin_DuplicateUsername(t *testing.T) {
	fix := newAdminFixture(t)

	_, err := fix.svc.CreateAdmin(context.Background(), adminInput("otro@appcenar.com", "admin"))
	assert.ErrorIs(t, err, domainerrors.ErrAccountExists)
}

func TestAdminService_UpdateAdmin_BlankPasswordKeepsHash(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	target, err := fix.svc.CreateAdmin(ctx, adminInput("julia@appcenar.com", "julia"))
	require.NoError(t, err)
	originalHash := target.PasswordHash

	updated, err := fix.svc.UpdateAdmin(ctx, fix.admin.ID, target.ID, usecase.UpdateAdminInput{
		Name:       "Julia María",
		LastName:   "Gómez",
		NationalID: "001-1234567-8",
		Email:      "julia@appcenar.com",
		Username:   "julia",
	})
	require.NoError(t, err)
	assert.Equal(t, "Julia María", updated.Name)
	assert.Equal(t, originalHash, updated.PasswordHash)

	stored, err := fix.store.accounts.FindByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, originalHash, stored.PasswordHash)
}

func TestAdminService_UpdateAdmin_NewPasswordRehashes(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	target, err := fix.svc.CreateAdmin(ctx, adminInput("julia@appcenar.com", "julia"))
	require.NoError(t, err)

	input := usecase.UpdateAdminInput{
		Name: "Julia", Email: "julia@appcenar.com", Username: "julia",
		Password: "NuevaClave456!", PasswordConfirm: "NuevaClave456!",
	}
	updated, err := fix.svc.UpdateAdmin(ctx, fix.admin.ID, target.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "hashed:NuevaClave456!", updated.PasswordHash)
}

func TestAdminService_UpdateAdmin_RejectsSelfAndNonAdmins(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	_, err := fix.svc.UpdateAdmin(ctx, fix.admin.ID, fix.admin.ID, usecase.UpdateAdminInput{})
	assert.ErrorIs(t, err, domainerrors.ErrSelfEdit)

	customer := &entity.Account{
		Email: "ana@example.com", Username: "anaperez",
		Role: entity.RoleCustomer, Active: true,
	}
	require.NoError(t, fix.store.accounts.Create(ctx, customer))

	_, err = fix.svc.UpdateAdmin(ctx, fix.admin.ID, customer.ID, usecase.UpdateAdminInput{})
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAdminService_BusinessTypeLifecycle(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	bt, err := fix.svc.CreateBusinessType(ctx, usecase.BusinessTypeInput{
		Name:        "Restaurante",
		Description: "Comida preparada",
	})
	require.NoError(t, err)

	updated, err := fix.svc.UpdateBusinessType(ctx, bt.ID, usecase.BusinessTypeInput{
		Name: "Restaurantes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Restaurantes", updated.Name)

	require.NoError(t, fix.svc.DeleteBusinessType(ctx, bt.ID))

	listed, err := fix.svc.ListBusinessTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestAdminService_DeleteBusinessType_InUse(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	bt, err := fix.svc.CreateBusinessType(ctx, usecase.BusinessTypeInput{Name: "Restaurante"})
	require.NoError(t, err)

	merchant := &entity.Account{
		Email: "rosa@example.com", Username: "rosa@example.com",
		Role: entity.RoleMerchant, Active: true,
		MerchantProfile: &entity.MerchantProfile{StoreName: "Pizzería", BusinessTypeID: bt.ID},
	}
	require.NoError(t, fix.store.accounts.Create(ctx, merchant))

	err = fix.svc.DeleteBusinessType(ctx, bt.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAdminService_UpdateTaxRate_AppliesOnlyToNewOrders(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	settings, err := fix.svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.TaxRate.Equal(decimal.NewFromInt(18)))

	updated, err := fix.svc.UpdateTaxRate(ctx, decimal.NewFromInt(16))
	require.NoError(t, err)
	assert.True(t, updated.TaxRate.Equal(decimal.NewFromInt(16)))

	settings, err = fix.svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.TaxRate.Equal(decimal.NewFromInt(16)))
}

func TestAdminService_UpdateTaxRate_RejectsOutOfRange(t *testing.T) {
	fix := newAdminFixture(t)
	ctx := context.Background()

	_, err := fix.svc.UpdateTaxRate(ctx, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fix.svc.UpdateTaxRate(ctx, decimal.NewFromInt(101))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
