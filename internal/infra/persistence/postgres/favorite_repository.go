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

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// FindByCustomer retrieves all favorites of a customer, newest first.
func (repo *favoriteRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by customer")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// Exists reports whether the customer has marked the merchant as favorite.
func (repo *favoriteRepository) Exists(ctx context.Context, customerID, merchantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("customer_id = ? AND merchant_id = ?", customerID, merchantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite existence")
	}

	return count > 0, nil
}

// Create persists a favorite mark. The unique index makes repeat marks a no-op.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Already a favorite; idempotent by contract.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("invalid customer or merchant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes a favorite mark.
func (repo *favoriteRepository) Delete(ctx context.Context, customerID, merchantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("customer_id = ? AND merchant_id = ?", customerID, merchantID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		MerchantID: data.MerchantID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		MerchantID: data.MerchantID,
		CreatedAt:  data.CreatedAt,
	}
}
