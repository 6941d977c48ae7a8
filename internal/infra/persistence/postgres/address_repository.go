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
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindByCustomer retrieves all addresses owned by a customer.
func (repo *addressRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list addresses by customer")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update modifies an existing address.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"label":       address.Label,
			"description": address.Description,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	return nil
}

// Delete removes an address.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		Label:       data.Label,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		Label:       data.Label,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
