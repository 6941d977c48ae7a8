package impl

import (
	"context"
	"log/slog"

	deliverycontext "appcenar/internal/delivery/context"
	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// MerchantServiceParams holds dependencies for merchantService, injected by Fx.
type MerchantServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(params MerchantServiceParams) usecase.MerchantUsecase {
	return &merchantService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *merchantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the merchant's received orders, most recent first.
func (srv *merchantService) ListOrders(ctx context.Context, merchantID uuid.UUID) ([]*entity.Order, error) {
	return srv.orderRepo.FindByMerchant(ctx, merchantID)
}

// GetOrder returns one of the merchant's orders.
func (srv *merchantService) GetOrder(ctx context.Context, merchantID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}
	if order.MerchantID != merchantID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// AssignCourier picks an available active courier for a pending order.
// Assignment, status change and the courier's availability flip commit
// together or not at all.
func (srv *merchantService) AssignCourier(ctx context.Context, merchantID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		accountRepo := repoFactory.NewAccountRepository()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}
		if found.MerchantID != merchantID {
			return domainerrors.ErrOrderNotFound
		}
		if found.Status != entity.OrderStatusPending {
			return domainerrors.ErrOrderNotPending
		}

		courier, err := accountRepo.FindAvailableCourier(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrNoCourierAvailable
			}

			return err
		}

		courierID := courier.ID
		found.CourierID = &courierID
		found.Status = entity.OrderStatusInProgress

		if err := orderRepo.Update(ctx, found); err != nil {
			return err
		}
		if err := accountRepo.SetCourierAvailability(ctx, courier.ID, false); err != nil {
			return err
		}

		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Courier assigned",
		slog.Any("orderID", order.ID), slog.Any("courierID", *order.CourierID))

	return order, nil
}

// ListCategories returns the merchant's categories.
func (srv *merchantService) ListCategories(ctx context.Context, merchantID uuid.UUID) ([]*entity.Category, error) {
	return srv.categoryRepo.FindByMerchant(ctx, merchantID)
}

// CreateCategory adds a category to the merchant's catalog.
func (srv *merchantService) CreateCategory(ctx context.Context, merchantID uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		MerchantID:  merchantID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory modifies one of the merchant's categories.
func (srv *merchantService) UpdateCategory(ctx context.Context, merchantID, categoryID uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.ownedCategory(ctx, merchantID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes one of the merchant's categories. Its products are
// kept and left uncategorized, in the same transaction.
func (srv *merchantService) DeleteCategory(ctx context.Context, merchantID, categoryID uuid.UUID) error {
	if _, err := srv.ownedCategory(ctx, merchantID, categoryID); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().ClearCategory(ctx, merchantID, categoryID); err != nil {
			return err
		}

		return repoFactory.NewCategoryRepository().Delete(ctx, categoryID)
	})
}

// ListProducts returns the merchant's products.
func (srv *merchantService) ListProducts(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	return srv.productRepo.FindByMerchant(ctx, merchantID)
}

// CreateProduct adds a product to the merchant's catalog.
func (srv *merchantService) CreateProduct(ctx context.Context, merchantID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if err := srv.checkCategoryOwnership(ctx, merchantID, input.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		MerchantID:  merchantID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct modifies one of the merchant's products. Snapshots taken by
// existing orders keep the old values.
func (srv *merchantService) UpdateProduct(ctx context.Context, merchantID, productID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}
	if err := srv.checkCategoryOwnership(ctx, merchantID, input.CategoryID); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.CategoryID = input.CategoryID

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes one of the merchant's products.
func (srv *merchantService) DeleteProduct(ctx context.Context, merchantID, productID uuid.UUID) error {
	if _, err := srv.ownedProduct(ctx, merchantID, productID); err != nil {
		return err
	}

	return srv.productRepo.Delete(ctx, productID)
}

func (srv *merchantService) ownedCategory(ctx context.Context, merchantID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, err
	}
	if category.MerchantID != merchantID {
		return nil, domainerrors.ErrCategoryNotFound
	}

	return category, nil
}

func (srv *merchantService) ownedProduct(ctx context.Context, merchantID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}
	if product.MerchantID != merchantID {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (srv *merchantService) checkCategoryOwnership(ctx context.Context, merchantID uuid.UUID, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	_, err := srv.ownedCategory(ctx, merchantID, *categoryID)

	return err
}
