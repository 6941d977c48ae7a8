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

// businessTypeRepository implements the repository.BusinessTypeRepository interface.
type businessTypeRepository struct {
	db *gorm.DB
}

// NewBusinessTypeRepository is the constructor for businessTypeRepository.
func NewBusinessTypeRepository(db *gorm.DB) repository.BusinessTypeRepository {
	return &businessTypeRepository{
		db: db,
	}
}

// FindByID retrieves a business type by its unique ID.
func (repo *businessTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessType, error) {
	var btM model.BusinessTypeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&btM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find business type by ID")
	}

	return toBusinessTypeDomain(&btM), nil
}

// FindAll retrieves every business type, ordered alphabetically by name.
func (repo *businessTypeRepository) FindAll(ctx context.Context) ([]*entity.BusinessType, error) {
	var btModels []*model.BusinessTypeModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&btModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list business types")
	}

	types := make([]*entity.BusinessType, 0, len(btModels))
	for _, btM := range btModels {
		types = append(types, toBusinessTypeDomain(btM))
	}

	return types, nil
}

// Create persists a new business type.
func (repo *businessTypeRepository) Create(ctx context.Context, bt *entity.BusinessType) error {
	btM := fromBusinessTypeDomain(bt)

	if err := repo.db.WithContext(ctx).Create(btM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("business type name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business type")
	}

	bt.ID = btM.ID
	bt.CreatedAt = btM.CreatedAt
	bt.UpdatedAt = btM.UpdatedAt

	return nil
}

// Update modifies an existing business type.
func (repo *businessTypeRepository) Update(ctx context.Context, bt *entity.BusinessType) error {
	btM := fromBusinessTypeDomain(bt)

	err := repo.db.WithContext(ctx).
		Model(&model.BusinessTypeModel{}).
		Where("id = ?", bt.ID).
		Updates(map[string]any{
			"name":        btM.Name,
			"description": btM.Description,
			"icon_url":    btM.IconURL,
		}).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("business type name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update business type")
	}

	return nil
}

// Delete removes a business type unless merchants still reference it.
func (repo *businessTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := repo.CountMerchants(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrBusinessTypeInUse
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessTypeModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrBusinessTypeInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessTypeNotFound
	}

	return nil
}

// CountMerchants returns the number of merchants assigned to the business type.
func (repo *businessTypeRepository) CountMerchants(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MerchantProfileModel{}).
		Where("business_type_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count merchants for business type")
	}

	return count, nil
}

// --- Mapper Functions ---

func toBusinessTypeDomain(data *model.BusinessTypeModel) *entity.BusinessType {
	if data == nil {
		return nil
	}

	return &entity.BusinessType{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IconURL:     data.IconURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBusinessTypeDomain(data *entity.BusinessType) *model.BusinessTypeModel {
	if data == nil {
		return nil
	}

	return &model.BusinessTypeModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IconURL:     data.IconURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
