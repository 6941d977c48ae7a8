package postgres

import (
	"context"
	"time"

	"appcenar/internal/domain/entity"
	domainerrors "appcenar/internal/domain/errors"
	"appcenar/internal/domain/repository"
	"appcenar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order with its item snapshots by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByCustomer retrieves all orders placed by a customer, most recent first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return repo.findAll(ctx, "customer_id = ?", customerID)
}

// FindByMerchant retrieves all orders received by a merchant, most recent first.
func (repo *orderRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Order, error) {
	return repo.findAll(ctx, "merchant_id = ?", merchantID)
}

// FindByCourier retrieves all orders assigned to a courier, most recent first.
func (repo *orderRepository) FindByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.Order, error) {
	return repo.findAll(ctx, "courier_id = ?", courierID)
}

// Create persists a new order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.Items[i].OrderID
	}

	return nil
}

// Update modifies an existing order header. Items are immutable after creation.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"courier_id": order.CourierID,
			"status":     order.Status.String(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	return nil
}

// CountAll returns the total number of orders in the system.
func (repo *orderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountSince returns the number of orders created at or after the given time.
func (repo *orderRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent orders")
	}

	return count, nil
}

// CountByMerchant returns the number of orders received by a merchant.
func (repo *orderRepository) CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("merchant_id = ?", merchantID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by merchant")
	}

	return count, nil
}

// CountByCustomer returns the number of orders placed by a customer.
func (repo *orderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return repo.countWhere(ctx, "customer_id = ?", customerID)
}

// CountByCourier returns the number of orders assigned to a courier.
func (repo *orderRepository) CountByCourier(ctx context.Context, courierID uuid.UUID) (int64, error) {
	return repo.countWhere(ctx, "courier_id = ?", courierID)
}

func (repo *orderRepository) countWhere(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func (repo *orderRepository) findAll(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where(query, args...).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Price:     itemM.Price,
			ImageURL:  itemM.ImageURL,
		})
	}

	return &entity.Order{
		ID:                 data.ID,
		CustomerID:         data.CustomerID,
		MerchantID:         data.MerchantID,
		CourierID:          data.CourierID,
		AddressID:          data.AddressID,
		AddressLabel:       data.AddressLabel,
		AddressDescription: data.AddressDescription,
		Items:              items,
		Subtotal:           data.Subtotal,
		TaxRate:            data.TaxRate,
		Tax:                data.Tax,
		Total:              data.Total,
		Status:             entity.OrderStatus(data.Status),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
		})
	}

	return &model.OrderModel{
		ID:                 data.ID,
		CustomerID:         data.CustomerID,
		MerchantID:         data.MerchantID,
		CourierID:          data.CourierID,
		AddressID:          data.AddressID,
		AddressLabel:       data.AddressLabel,
		AddressDescription: data.AddressDescription,
		Subtotal:           data.Subtotal,
		TaxRate:            data.TaxRate,
		Tax:                data.Tax,
		Total:              data.Total,
		Status:             data.Status.String(),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		Items:              items,
	}
}
