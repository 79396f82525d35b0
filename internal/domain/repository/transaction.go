package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// The use case layer drives transactions through it without depending on a
// specific driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error the transaction is rolled back, otherwise committed.
	// All repositories obtained from the factory share the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// RefreshTokenRepo returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository

	// CategoryRepo returns a CategoryRepository bound to the current transaction.
	CategoryRepo() CategoryRepository

	// BookmarkRepo returns a BookmarkRepository bound to the current transaction.
	BookmarkRepo() BookmarkRepository

	// TagRepo returns a TagRepository bound to the current transaction.
	TagRepo() TagRepository
}
