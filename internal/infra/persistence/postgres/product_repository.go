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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the products matching the given IDs.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByMerchant retrieves all products owned by a merchant.
func (repo *productRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by merchant")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image_url":   product.ImageURL,
			"category_id": product.CategoryID,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ClearCategory detaches every product of a merchant from the given category.
func (repo *productRepository) ClearCategory(ctx context.Context, merchantID, categoryID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("merchant_id = ? AND category_id = ?", merchantID, categoryID).
		Update("category_id", nil).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product categories")
	}

	return nil
}

// CountByMerchant returns the number of products owned by a merchant.
func (repo *productRepository) CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("merchant_id = ?", merchantID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by merchant")
	}

	return count, nil
}

// CountAll returns the total number of products in the system.
func (repo *productRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		MerchantID:  data.MerchantID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		MerchantID:  data.MerchantID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
