package impl

import (
	"context"

	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	favoriteRepo repository.FavoriteRepository
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	FavoriteRepo repository.FavoriteRepository
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		favoriteRepo: params.FavoriteRepo,
	}
}

// ListFavorites returns the customer's favorite merchants with their
// storefront details. Favorites pointing at deleted merchants are skipped.
func (srv *favoriteService) ListFavorites(ctx context.Context, customerID uuid.UUID) ([]usecase.FavoriteMerchant, error) {
	favorites, err := srv.favoriteRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result := make([]usecase.FavoriteMerchant, 0, len(favorites))
	for _, favorite := range favorites {
		merchant, err := srv.accountRepo.FindByID(ctx, favorite.MerchantID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				continue
			}

			return nil, err
		}
		if merchant.MerchantProfile == nil {
			continue
		}

		result = append(result, usecase.FavoriteMerchant{
			MerchantID: merchant.ID,
			StoreName:  merchant.MerchantProfile.StoreName,
			LogoURL:    merchant.MerchantProfile.LogoURL,
			OpensAt:    merchant.MerchantProfile.OpensAt,
			ClosesAt:   merchant.MerchantProfile.ClosesAt,
		})
	}

	return result, nil
}

// Toggle flips the favorite mark for a merchant and reports the new state.
// The check and the write run in one transaction so a double-toggle always
// lands back where it started.
func (srv *favoriteService) Toggle(ctx context.Context, customerID, merchantID uuid.UUID) (bool, error) {
	merchant, err := srv.accountRepo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return false, domainerrors.ErrMerchantNotFound
		}

		return false, err
	}
	if merchant.Role != entity.RoleMerchant {
		return false, domainerrors.ErrMerchantNotFound
	}

	var nowFavorite bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()

		exists, err := favoriteRepo.Exists(ctx, customerID, merchantID)
		if err != nil {
			return err
		}

		if exists {
			nowFavorite = false

			err := favoriteRepo.Delete(ctx, customerID, merchantID)
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				// Lost a race with another delete; the end state is the same.
				return nil
			}

			return err
		}

		nowFavorite = true

		return favoriteRepo.Create(ctx, &entity.Favorite{
			CustomerID: customerID,
			MerchantID: merchantID,
		})
	})
	if err != nil {
		return false, err
	}

	return nowFavorite, nil
}
