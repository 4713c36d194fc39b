package repository

import "context"

// ConnectionScope brackets a logical data-access operation with the checkout
// and guaranteed release of a storage connection. Implementations draw from a
// bounded pool: the connection is acquired when the scope begins, handed to
// the repositories the factory creates, and released on every exit path
// (success, error or panic). Within one scope all repository operations share
// the same connection and transaction.
type ConnectionScope interface {
	// Execute runs fn inside a single connection checkout. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the scope's
// connection. Repositories obtained from the same factory see each other's
// uncommitted writes.
type RepositoryFactory interface {
	// Users returns a UserRepository bound to the current scope.
	Users() UserRepository

	// Recipes returns a RecipeRepository bound to the current scope.
	Recipes() RecipeRepository

	// Follows returns a FollowRepository bound to the current scope.
	Follows() FollowRepository
}
