package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "appcenar/internal/delivery/context"
	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/domain/service"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	businessTypeRepo repository.BusinessTypeRepository
	settingsRepo     repository.SettingsRepository
	hasher           service.PasswordHasher
	logger           *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	OrderRepo        repository.OrderRepository
	ProductRepo      repository.ProductRepository
	BusinessTypeRepo repository.BusinessTypeRepository
	SettingsRepo     repository.SettingsRepository
	Hasher           service.PasswordHasher
	Logger           *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		orderRepo:        params.OrderRepo,
		productRepo:      params.ProductRepo,
		businessTypeRepo: params.BusinessTypeRepo,
		settingsRepo:     params.SettingsRepo,
		hasher:           params.Hasher,
		logger:           params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard returns the landing page counters. Every figure is its own
// query; the dashboard is a live view, not a snapshot.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	stats := &usecase.DashboardStats{}

	var err error
	if stats.OrdersTotal, err = srv.orderRepo.CountAll(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.OrdersToday, err = srv.orderRepo.CountSince(ctx, startOfDay); err != nil {
		return nil, err
	}

	if stats.Products, err = srv.productRepo.CountAll(ctx); err != nil {
		return nil, err
	}

	roleCounts := []struct {
		role entity.Role
		dst  *usecase.RoleCount
	}{
		{entity.RoleCustomer, &stats.Customers},
		{entity.RoleMerchant, &stats.Merchants},
		{entity.RoleCourier, &stats.Couriers},
	}
	for _, rc := range roleCounts {
		active, inactive, err := srv.accountRepo.CountByRole(ctx, rc.role)
		if err != nil {
			return nil, err
		}
		rc.dst.Active = active
		rc.dst.Inactive = inactive
	}

	return stats, nil
}

// ListAccounts returns the accounts of a role with their per-role figures.
func (srv *adminService) ListAccounts(ctx context.Context, role entity.Role) ([]usecase.AccountListing, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	accounts, err := srv.accountRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	listings := make([]usecase.AccountListing, 0, len(accounts))
	for _, account := range accounts {
		listing := usecase.AccountListing{Account: account}

		switch role {
		case entity.RoleCustomer:
			if listing.OrderCount, err = srv.orderRepo.CountByCustomer(ctx, account.ID); err != nil {
				return nil, err
			}
		case entity.RoleMerchant:
			if listing.OrderCount, err = srv.orderRepo.CountByMerchant(ctx, account.ID); err != nil {
				return nil, err
			}
			if listing.ProductCount, err = srv.productRepo.CountByMerchant(ctx, account.ID); err != nil {
				return nil, err
			}
		case entity.RoleCourier:
			if listing.OrderCount, err = srv.orderRepo.CountByCourier(ctx, account.ID); err != nil {
				return nil, err
			}
		}

		listings = append(listings, listing)
	}

	return listings, nil
}

// ToggleActive flips an account's activation flag. Self-deactivation is rejected.
func (srv *adminService) ToggleActive(ctx context.Context, adminID, accountID uuid.UUID) (*entity.Account, error) {
	if adminID == accountID {
		return nil, domainerrors.ErrSelfEdit
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, err
	}

	account.Active = !account.Active
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account activation toggled",
		slog.Any("accountID", account.ID), slog.Bool("active", account.Active))

	return account, nil
}

// CreateAdmin registers an administrator. Admin accounts are born active.
func (srv *adminService) CreateAdmin(ctx context.Context, input usecase.CreateAdminInput) (*entity.Account, error) {
	if input.Password != input.PasswordConfirm {
		return nil, domainerrors.ErrPasswordMismatch
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	// Same identifier normalization as self-registration, so the account
	// stays reachable through the login path and the duplicate check bites.
	account := &entity.Account{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Active:       true,
		Name:         input.Name,
		LastName:     input.LastName,
		NationalID:   input.NationalID,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, domainerrors.ErrAccountExists
		}

		return nil, err
	}

	srv.log(ctx).Info("Administrator created", slog.Any("accountID", account.ID))

	return account, nil
}

// UpdateAdmin modifies another administrator. A blank password keeps the
// stored hash exactly as it is.
func (srv *adminService) UpdateAdmin(ctx context.Context, adminID, targetID uuid.UUID, input usecase.UpdateAdminInput) (*entity.Account, error) {
	if adminID == targetID {
		return nil, domainerrors.ErrSelfEdit
	}

	account, err := srv.accountRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, err
	}
	if account.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrAccountNotFound
	}

	account.Name = input.Name
	account.LastName = input.LastName
	account.NationalID = input.NationalID
	account.Email = strings.ToLower(strings.TrimSpace(input.Email))
	account.Username = strings.TrimSpace(input.Username)

	if input.Password != "" {
		if input.Password != input.PasswordConfirm {
			return nil, domainerrors.ErrPasswordMismatch
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		account.PasswordHash = hash
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, domainerrors.ErrAccountExists
		}

		return nil, err
	}

	return account, nil
}

// ListBusinessTypes returns every business type.
func (srv *adminService) ListBusinessTypes(ctx context.Context) ([]*entity.BusinessType, error) {
	return srv.businessTypeRepo.FindAll(ctx)
}

// CreateBusinessType adds a business type.
func (srv *adminService) CreateBusinessType(ctx context.Context, input usecase.BusinessTypeInput) (*entity.BusinessType, error) {
	bt := &entity.BusinessType{
		Name:        input.Name,
		Description: input.Description,
		IconURL:     input.IconURL,
	}

	if err := srv.businessTypeRepo.Create(ctx, bt); err != nil {
		return nil, err
	}

	return bt, nil
}

// UpdateBusinessType modifies a business type.
func (srv *adminService) UpdateBusinessType(ctx context.Context, id uuid.UUID, input usecase.BusinessTypeInput) (*entity.BusinessType, error) {
	bt, err := srv.businessTypeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessTypeNotFound) {
			return nil, domainerrors.ErrBusinessTypeNotFound
		}

		return nil, err
	}

	bt.Name = input.Name
	bt.Description = input.Description
	bt.IconURL = input.IconURL

	if err := srv.businessTypeRepo.Update(ctx, bt); err != nil {
		return nil, err
	}

	return bt, nil
}

// DeleteBusinessType removes a business type still unused by merchants.
func (srv *adminService) DeleteBusinessType(ctx context.Context, id uuid.UUID) error {
	err := srv.businessTypeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessTypeNotFound) {
			return domainerrors.ErrBusinessTypeNotFound
		}
		if errors.Is(err, repository.ErrBusinessTypeInUse) {
			return domainerrors.ErrConflict.WrapMessage("business type has merchants assigned")
		}

		return err
	}

	return nil
}

// GetSettings returns the system settings, seeding defaults on first use.
func (srv *adminService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	return srv.settingsRepo.Get(ctx)
}

// UpdateTaxRate changes the system-wide tax rate applied to new orders.
func (srv *adminService) UpdateTaxRate(ctx context.Context, rate decimal.Decimal) (*entity.Settings, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("tax rate must be between 0 and 100")
	}

	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.TaxRate = rate
	if err := srv.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tax rate updated", slog.String("rate", rate.StringFixed(2)))

	return settings, nil
}
