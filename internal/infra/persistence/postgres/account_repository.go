// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByID retrieves an account with its role profile by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Preload("CourierProfile").
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves an account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByLogin retrieves an account whose email or username matches the identifier.
func (repo *accountRepository) FindByLogin(ctx context.Context, login string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ? OR username = ?", login, login)
}

// FindByActivationToken retrieves the account holding the given activation token.
func (repo *accountRepository) FindByActivationToken(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, repository.ErrAccountNotFound
	}

	return repo.findOne(ctx, "activation_token = ?", token)
}

// FindByResetToken retrieves the account holding the given password reset token.
func (repo *accountRepository) FindByResetToken(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, repository.ErrAccountNotFound
	}

	return repo.findOne(ctx, "reset_token = ?", token)
}

// FindByRole retrieves all accounts with the given role, newest first.
func (repo *accountRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Preload("CourierProfile").
		Where("role = ?", role.String()).
		Order("created_at DESC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by role")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// FindAvailableCourier retrieves one active courier currently marked as available.
// The row is locked so two concurrent assignments cannot pick the same courier.
func (repo *accountRepository) FindAvailableCourier(ctx context.Context) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED", Table: clause.Table{Name: "accounts"}}).
		Joins("JOIN courier_profiles ON courier_profiles.account_id = accounts.id").
		Where("accounts.role = ? AND accounts.active = ? AND courier_profiles.available = ?",
			entity.RoleCourier.String(), true, true).
		Order("accounts.created_at ASC").
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find available courier")
	}

	// Load the courier profile separately; the locking join skips preloads.
	var profileM model.CourierProfileModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountM.ID).
		First(&profileM).Error; err == nil {
		accountM.CourierProfile = &profileM
	}

	return toAccountDomain(&accountM), nil
}

// FindActiveMerchantsByBusinessType retrieves active merchants for a business type,
// ordered alphabetically by store name.
func (repo *accountRepository) FindActiveMerchantsByBusinessType(ctx context.Context, businessTypeID uuid.UUID, search string) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	query := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Joins("JOIN merchant_profiles ON merchant_profiles.account_id = accounts.id").
		Where("accounts.role = ? AND accounts.active = ? AND merchant_profiles.business_type_id = ?",
			entity.RoleMerchant.String(), true, businessTypeID)
	if search != "" {
		query = query.Where("merchant_profiles.store_name ILIKE ?", "%"+search+"%")
	}

	if err := query.
		Order("merchant_profiles.store_name ASC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find merchants by business type")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Create persists a new account together with its role profile.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account and its role profile.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Select("*").
		Omit("created_at").
		Updates(accountM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	return nil
}

// SetCourierAvailability flips the availability flag of a courier profile.
func (repo *accountRepository) SetCourierAvailability(ctx context.Context, courierID uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourierProfileModel{}).
		Where("account_id = ?", courierID).
		Update("available", available)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update courier availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// CountByRole returns the number of accounts per role, split by active state.
func (repo *accountRepository) CountByRole(ctx context.Context, role entity.Role) (int64, int64, error) {
	var active, inactive int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("role = ? AND active = ?", role.String(), true).
		Count(&active).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count active accounts")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("role = ? AND active = ?", role.String(), false).
		Count(&inactive).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count inactive accounts")
	}

	return active, inactive, nil
}

func (repo *accountRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Preload("CourierProfile").
		Where(query, args...).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:              data.ID,
		Email:           data.Email,
		Username:        data.Username,
		PasswordHash:    data.PasswordHash,
		Role:            entity.Role(data.Role),
		Active:          data.Active,
		ActivationToken: data.ActivationToken,
		ResetToken:      data.ResetToken,
		Name:            data.Name,
		LastName:        data.LastName,
		Phone:           data.Phone,
		PhotoURL:        data.PhotoURL,
		NationalID:      data.NationalID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.MerchantProfile != nil {
		account.MerchantProfile = &entity.MerchantProfile{
			AccountID:      data.MerchantProfile.AccountID,
			StoreName:      data.MerchantProfile.StoreName,
			LogoURL:        data.MerchantProfile.LogoURL,
			OpensAt:        data.MerchantProfile.OpensAt,
			ClosesAt:       data.MerchantProfile.ClosesAt,
			BusinessTypeID: data.MerchantProfile.BusinessTypeID,
			UpdatedAt:      data.MerchantProfile.UpdatedAt,
		}
	}

	if data.CourierProfile != nil {
		account.CourierProfile = &entity.CourierProfile{
			AccountID: data.CourierProfile.AccountID,
			Available: data.CourierProfile.Available,
			UpdatedAt: data.CourierProfile.UpdatedAt,
		}
	}

	return account
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:              data.ID,
		Email:           data.Email,
		Username:        data.Username,
		PasswordHash:    data.PasswordHash,
		Role:            data.Role.String(),
		Active:          data.Active,
		ActivationToken: data.ActivationToken,
		ResetToken:      data.ResetToken,
		Name:            data.Name,
		LastName:        data.LastName,
		Phone:           data.Phone,
		PhotoURL:        data.PhotoURL,
		NationalID:      data.NationalID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.MerchantProfile != nil {
		accountM.MerchantProfile = &model.MerchantProfileModel{
			AccountID:      data.MerchantProfile.AccountID,
			StoreName:      data.MerchantProfile.StoreName,
			LogoURL:        data.MerchantProfile.LogoURL,
			OpensAt:        data.MerchantProfile.OpensAt,
			ClosesAt:       data.MerchantProfile.ClosesAt,
			BusinessTypeID: data.MerchantProfile.BusinessTypeID,
			UpdatedAt:      data.MerchantProfile.UpdatedAt,
		}
	}

	if data.CourierProfile != nil {
		accountM.CourierProfile = &model.CourierProfileModel{
			AccountID: data.CourierProfile.AccountID,
			Available: data.CourierProfile.Available,
			UpdatedAt: data.CourierProfile.UpdatedAt,
		}
	}

	return accountM
}
