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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProductRepo  repository.ProductRepository
	SettingsRepo repository.SettingsRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		productRepo:  params.ProductRepo,
		settingsRepo: params.SettingsRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PreviewOrder prices a cart without persisting anything.
func (srv *orderService) PreviewOrder(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.OrderQuote, error) {
	return srv.buildQuote(ctx, srv.accountRepo, srv.productRepo, srv.settingsRepo, input)
}

// buildQuote fetches live records and rebuilds the full pricing from them.
// Repeated product IDs become separate cart lines.
func (srv *orderService) buildQuote(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	input usecase.PlaceOrderInput,
) (*usecase.OrderQuote, error) {
	if len(input.ProductIDs) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	merchant, err := accountRepo.FindByID(ctx, input.MerchantID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, err
	}
	if merchant.Role != entity.RoleMerchant || !merchant.Active {
		return nil, domainerrors.ErrMerchantNotFound
	}

	unique := make([]uuid.UUID, 0, len(input.ProductIDs))
	seen := make(map[uuid.UUID]struct{}, len(input.ProductIDs))
	for _, id := range input.ProductIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	products, err := productRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	items := make([]entity.OrderItem, 0, len(input.ProductIDs))
	for _, id := range input.ProductIDs {
		product, ok := byID[id]
		if !ok || product.MerchantID != input.MerchantID {
			return nil, domainerrors.ErrProductNotFound
		}
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
		})
	}

	settings, err := settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	subtotal, tax, total := entity.PriceItems(items, settings.TaxRate)

	return &usecase.OrderQuote{
		Items:    items,
		Subtotal: subtotal,
		TaxRate:  settings.TaxRate,
		Tax:      tax,
		Total:    total,
	}, nil
}

// PlaceOrder validates, re-prices and persists the order in one transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := addressRepo.FindByID(ctx, input.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return err
		}
		if address.CustomerID != input.CustomerID {
			return domainerrors.ErrAddressNotFound
		}

		// Pricing is rebuilt from live records inside the same transaction
		// that persists the order.
		quote, err := srv.buildQuote(ctx,
			repoFactory.NewAccountRepository(),
			repoFactory.NewProductRepository(),
			repoFactory.NewSettingsRepository(),
			input)
		if err != nil {
			return err
		}

		order = &entity.Order{
			CustomerID:         input.CustomerID,
			MerchantID:         input.MerchantID,
			AddressID:          address.ID,
			AddressLabel:       address.Label,
			AddressDescription: address.Description,
			Items:              quote.Items,
			Subtotal:           quote.Subtotal,
			TaxRate:            quote.TaxRate,
			Tax:                quote.Tax,
			Total:              quote.Total,
			Status:             entity.OrderStatusPending,
		}

		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("customerID", order.CustomerID),
		slog.Any("merchantID", order.MerchantID),
		slog.String("total", order.Total.StringFixed(2)))

	return order, nil
}

// ListOrders returns the customer's orders, most recent first.
func (srv *orderService) ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return srv.orderRepo.FindByCustomer(ctx, customerID)
}

// GetOrder returns one of the customer's orders.
func (srv *orderService) GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}
