// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, aggregate restore,
// fact production, fact application, snapshot persistence and fact tracking,
// inside one transaction.
package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// FactTracker registers produced facts for the fact log.
	// Tracked facts are flushed on Commit within the same transaction.
	FactTracker interface {
		TrackFact(facts ...kernel.Fact)
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogUoW manages transactions for catalog-only operations.
	// Used when commands only modify the item catalog.
	CatalogUoW interface {
		TxManager
		FactTracker
		ItemRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderBookUoW manages transactions for order-only operations.
	// Used when commands modify orders without consulting the catalog:
	// status changes, delivery slot assignment, deletion and notification.
	OrderBookUoW interface {
		TxManager
		FactTracker
		OrderRepoFactory
	}

	// OrderBookUoWFactory creates new order book unit of work instances.
	OrderBookUoWFactory interface {
		Create() OrderBookUoW
	}

	// UoW manages transactions spanning both aggregates. Used for cart
	// operations, which validate item existence against the catalog, and for
	// item deletion, which cascades into order carts.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   itemRepo := uow.ItemRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... restore aggregates, run commands, apply facts
	//   uow.TrackFact(facts...)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		FactTracker
		ItemRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
