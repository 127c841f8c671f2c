package commands

import (
	"context"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/orderbook"
	"shop/internal/core/ports"
)

// restoreCatalog loads every item snapshot and rebuilds the Catalog aggregate.
func restoreCatalog(ctx context.Context, repo ports.ItemRepository) (*catalog.Catalog, error) {
	items, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreCatalog(items)
}

// restoreOrderBook loads every order snapshot and rebuilds the OrderBook
// aggregate over the given item existence query.
func restoreOrderBook(
	ctx context.Context,
	repo ports.OrderRepository,
	items orderbook.ItemChecker,
) (*orderbook.OrderBook, error) {
	orders, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return orderbook.RestoreOrderBook(items, orders)
}
