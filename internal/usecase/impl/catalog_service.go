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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	accountRepo      repository.AccountRepository
	businessTypeRepo repository.BusinessTypeRepository
	categoryRepo     repository.CategoryRepository
	productRepo      repository.ProductRepository
	favoriteRepo     repository.FavoriteRepository
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	AccountRepo      repository.AccountRepository
	BusinessTypeRepo repository.BusinessTypeRepository
	CategoryRepo     repository.CategoryRepository
	ProductRepo      repository.ProductRepository
	FavoriteRepo     repository.FavoriteRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		accountRepo:      params.AccountRepo,
		businessTypeRepo: params.BusinessTypeRepo,
		categoryRepo:     params.CategoryRepo,
		productRepo:      params.ProductRepo,
		favoriteRepo:     params.FavoriteRepo,
	}
}

// ListBusinessTypes returns every business type for the customer home screen.
func (srv *catalogService) ListBusinessTypes(ctx context.Context) ([]*entity.BusinessType, error) {
	return srv.businessTypeRepo.FindAll(ctx)
}

// ListMerchants returns the active merchants of a business type with the
// caller's favorite flags.
func (srv *catalogService) ListMerchants(ctx context.Context, customerID, businessTypeID uuid.UUID, search string) ([]usecase.MerchantSummary, error) {
	if _, err := srv.businessTypeRepo.FindByID(ctx, businessTypeID); err != nil {
		if errors.Is(err, repository.ErrBusinessTypeNotFound) {
			return nil, domainerrors.ErrBusinessTypeNotFound
		}

		return nil, err
	}

	merchants, err := srv.accountRepo.FindActiveMerchantsByBusinessType(ctx, businessTypeID, search)
	if err != nil {
		return nil, err
	}

	favorites, err := srv.favoriteRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	favoriteSet := make(map[uuid.UUID]struct{}, len(favorites))
	for _, favorite := range favorites {
		favoriteSet[favorite.MerchantID] = struct{}{}
	}

	summaries := make([]usecase.MerchantSummary, 0, len(merchants))
	for _, merchant := range merchants {
		if merchant.MerchantProfile == nil {
			continue
		}
		_, isFavorite := favoriteSet[merchant.ID]
		summaries = append(summaries, usecase.MerchantSummary{
			ID:         merchant.ID,
			StoreName:  merchant.MerchantProfile.StoreName,
			LogoURL:    merchant.MerchantProfile.LogoURL,
			OpensAt:    merchant.MerchantProfile.OpensAt,
			ClosesAt:   merchant.MerchantProfile.ClosesAt,
			IsFavorite: isFavorite,
		})
	}

	return summaries, nil
}

// GetMerchantCatalog returns a merchant's products grouped by category.
// Uncategorized products come last under a nil category.
func (srv *catalogService) GetMerchantCatalog(ctx context.Context, merchantID uuid.UUID) (*usecase.MerchantCatalog, error) {
	merchant, err := srv.accountRepo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, err
	}
	if merchant.Role != entity.RoleMerchant || !merchant.Active {
		return nil, domainerrors.ErrMerchantNotFound
	}

	categories, err := srv.categoryRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]*entity.Product)
	var uncategorized []*entity.Product
	for _, product := range products {
		if product.CategoryID == nil {
			uncategorized = append(uncategorized, product)

			continue
		}
		byCategory[*product.CategoryID] = append(byCategory[*product.CategoryID], product)
	}

	grouped := make([]usecase.CategoryProducts, 0, len(categories)+1)
	for _, category := range categories {
		grouped = append(grouped, usecase.CategoryProducts{
			Category: category,
			Products: byCategory[category.ID],
		})
	}
	if len(uncategorized) > 0 {
		grouped = append(grouped, usecase.CategoryProducts{Products: uncategorized})
	}

	return &usecase.MerchantCatalog{
		Merchant:   merchant,
		Categories: grouped,
	}, nil
}
