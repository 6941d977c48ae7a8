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

// courierService implements the CourierUsecase interface.
type courierService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// CourierServiceParams holds dependencies for courierService, injected by Fx.
type CourierServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewCourierService is the constructor for courierService.
func NewCourierService(params CourierServiceParams) usecase.CourierUsecase {
	return &courierService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *courierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the orders assigned to the courier, most recent first.
func (srv *courierService) ListOrders(ctx context.Context, courierID uuid.UUID) ([]*entity.Order, error) {
	return srv.orderRepo.FindByCourier(ctx, courierID)
}

// GetOrder returns one of the courier's assigned orders.
func (srv *courierService) GetOrder(ctx context.Context, courierID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}
	if order.CourierID == nil || *order.CourierID != courierID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// CompleteDelivery marks an in-progress order as completed and makes the
// courier available again, in one transaction.
func (srv *courierService) CompleteDelivery(ctx context.Context, courierID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}
		if found.CourierID == nil || *found.CourierID != courierID {
			return domainerrors.ErrOrderNotFound
		}
		if found.Status != entity.OrderStatusInProgress {
			return domainerrors.ErrConflict.WrapMessage("order is not in progress")
		}

		found.Status = entity.OrderStatusCompleted
		if err := orderRepo.Update(ctx, found); err != nil {
			return err
		}

		if err := repoFactory.NewAccountRepository().SetCourierAvailability(ctx, courierID, true); err != nil {
			return err
		}

		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Delivery completed",
		slog.Any("orderID", order.ID), slog.Any("courierID", courierID))

	return order, nil
}
