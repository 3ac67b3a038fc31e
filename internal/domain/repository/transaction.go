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

// RepositoryFactory provides repository instances bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository

	// Tokens returns a TokenRepository bound to the current transaction.
	Tokens() TokenRepository

	// Products returns a ProductRepository bound to the current transaction.
	Products() ProductRepository

	// Categories returns a CategoryRepository bound to the current transaction.
	Categories() CategoryRepository

	// Carts returns a CartRepository bound to the current transaction.
	Carts() CartRepository

	// Orders returns an OrderRepository bound to the current transaction.
	Orders() OrderRepository

	// Addresses returns an AddressRepository bound to the current transaction.
	Addresses() AddressRepository
}
