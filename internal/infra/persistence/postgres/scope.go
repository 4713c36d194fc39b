// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cookbook/config"
	"cookbook/internal/domain/repository"
	"cookbook/internal/errors"

	"gorm.io/gorm"
)

// gormConnectionScope implements the domain's ConnectionScope interface using GORM.
// Each Execute checks one connection out of the bounded pool by opening a
// transaction and hands it back on commit or rollback; the release happens on
// every exit path, including panics, so no handle ever leaks.
type gormConnectionScope struct {
	db         *gorm.DB
	usersTable string
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx         *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	usersTable string
}

// Users creates a user repository instance bound to the transaction.
func (f *gormRepositoryFactory) Users() repository.UserRepository {
	return NewUserRepository(f.tx, f.usersTable)
}

// Recipes creates a recipe repository instance bound to the transaction.
func (f *gormRepositoryFactory) Recipes() repository.RecipeRepository {
	return NewRecipeRepository(f.tx)
}

// Follows creates a follow repository instance bound to the transaction.
func (f *gormRepositoryFactory) Follows() repository.FollowRepository {
	return NewFollowRepository(f.tx)
}

// NewConnectionScope is the constructor for gormConnectionScope.
// This function is used as an Fx provider.
func NewConnectionScope(db *gorm.DB, cfg *config.Config) repository.ConnectionScope {
	return &gormConnectionScope{
		db:         db,
		usersTable: cfg.Database.UsersTable,
	}
}

// Execute runs the given function within a single connection checkout.
func (scope *gormConnectionScope) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	// Begin a new transaction, which checks a connection out of the pool.
	tx := scope.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to acquire connection")
	}

	// If a panic occurs within the callback the transaction is rolled back
	// and the connection returned to the pool before re-panicking.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx, usersTable: scope.usersTable}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Report the rollback failure but keep the original business error visible.
			return errors.Wrapf(err, "transaction rollback failed: %v (original error)", rbErr)
		}

		return err // Return the original business error.
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
