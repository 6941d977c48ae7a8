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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindByMerchant retrieves all categories owned by a merchant.
func (repo *categoryRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories by merchant")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("invalid merchant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Update modifies an existing category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}

	return nil
}

// Delete removes a category.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// CountByMerchant returns the number of categories owned by a merchant.
func (repo *categoryRepository) CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("merchant_id = ?", merchantID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count categories by merchant")
	}

	return count, nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		MerchantID:  data.MerchantID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		MerchantID:  data.MerchantID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
