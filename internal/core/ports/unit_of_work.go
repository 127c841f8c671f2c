package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control, transaction-bound repositories and fact
// tracking. Client code must explicitly manage the transaction lifecycle.
//
// Facts tracked during a transaction are flushed to the fact log by Commit,
// inside the same transaction as the snapshot writes. A rollback discards
// tracked facts along with everything else.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes tracked facts to the fact log and commits the current
	// transaction. Returns an error if no transaction is active or the
	// commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction, discarding tracked facts.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// TrackFact registers facts to be appended to the fact log on Commit.
	TrackFact(facts ...kernel.Fact)

	// ItemRepository returns an ItemRepository bound to the current transaction.
	ItemRepository() ItemRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// FactRepository returns a FactRepository bound to the current transaction.
	FactRepository() FactRepository
}
