package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewAccountRepository returns an AccountRepository instance bound to the current transaction.
	NewAccountRepository() AccountRepository

	// NewBusinessTypeRepository returns a BusinessTypeRepository instance bound to the current transaction.
	NewBusinessTypeRepository() BusinessTypeRepository

	// NewCategoryRepository returns a CategoryRepository instance bound to the current transaction.
	NewCategoryRepository() CategoryRepository

	// NewProductRepository returns a ProductRepository instance bound to the current transaction.
	NewProductRepository() ProductRepository

	// NewAddressRepository returns an AddressRepository instance bound to the current transaction.
	NewAddressRepository() AddressRepository

	// NewFavoriteRepository returns a FavoriteRepository instance bound to the current transaction.
	NewFavoriteRepository() FavoriteRepository

	// NewOrderRepository returns an OrderRepository instance bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewSettingsRepository returns a SettingsRepository instance bound to the current transaction.
	NewSettingsRepository() SettingsRepository

	// NewSessionRepository returns a SessionRepository instance bound to the current transaction.
	NewSessionRepository() SessionRepository
}
