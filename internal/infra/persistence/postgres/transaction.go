package postgres

import (
	"context"
	"fmt"

	"appcenar/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewAccountRepository creates a new account repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// NewBusinessTypeRepository creates a new business type repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewBusinessTypeRepository() repository.BusinessTypeRepository {
	return NewBusinessTypeRepository(f.tx)
}

// NewCategoryRepository creates a new category repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

// NewProductRepository creates a new product repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

// NewAddressRepository creates a new address repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

// NewFavoriteRepository creates a new favorite repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return NewFavoriteRepository(f.tx)
}

// NewOrderRepository creates a new order repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

// NewSettingsRepository creates a new settings repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewSettingsRepository() repository.SettingsRepository {
	return NewSettingsRepository(f.tx)
}

// NewSessionRepository creates a new session repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewSessionRepository() repository.SessionRepository {
	return NewSessionRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
