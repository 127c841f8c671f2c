// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Fact tracking: facts recorded during a command are flushed to the fact
//     log on commit, inside the same transaction as the snapshot writes
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ItemRepository().Add(ctx, item); err != nil {
//	    return err
//	}
//	uow.TrackFact(fact)
//
//	return uow.Commit(ctx)
//
// Cross-Aggregate Transactions:
//
//	// All operations within the same transaction
//	if err := uow.ItemRepository().Remove(ctx, itemID); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, strippedOrder); err != nil {
//	    return err
//	}
//	uow.TrackFact(deleted, stripped)
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Keep transactions short to reduce lock contention
package postgres

import (
	"context"

	"shop/internal/adapters/out/postgres/factrepo"
	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and tracked facts,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:           f.db,
		trackedFacts: make([]kernel.Fact, 0),
	}
}

// GormUnitOfWork coordinates database transactions and collects facts produced
// during a business operation. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// Facts registered via TrackFact stay in memory until Commit, which appends
// them to the fact log within the open transaction before committing. Snapshot
// writes and their log entries therefore become visible atomically, and a
// rollback leaves no trace of either.
type GormUnitOfWork struct {
	db           *gorm.DB
	tx           *gorm.DB
	trackedFacts []kernel.Fact
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit appends the tracked facts to the fact log and finalizes all changes
// made within the current transaction. After commit, the transaction is closed
// and cannot be reused.
//
// Returns an error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if len(uow.trackedFacts) > 0 {
		if err := uow.FactRepository().Append(ctx, uow.trackedFacts...); err != nil {
			rollbackErr := uow.tx.Rollback().Error
			uow.tx = nil
			if rollbackErr != nil {
				return rollbackErr
			}
			return err
		}
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedFacts = uow.trackedFacts[:0]
	return err
}

// Rollback discards all changes made within the current transaction along
// with any tracked facts. After rollback, the transaction is closed and
// cannot be reused.
//
// Returns an error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedFacts = uow.trackedFacts[:0]
	return err
}

// TrackFact registers facts to be appended to the fact log on Commit.
// Command handlers call this once per fact an aggregate produced.
func (uow *GormUnitOfWork) TrackFact(facts ...kernel.Fact) {
	uow.trackedFacts = append(uow.trackedFacts, facts...)
}

// ItemRepository provides access to item persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) ItemRepository() ports.ItemRepository {
	return itemrepo.NewGormItemRepository(uow.conn())
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// FactRepository provides access to the fact log within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) FactRepository() ports.FactRepository {
	return factrepo.NewGormFactRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
