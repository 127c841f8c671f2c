package cmd

import (
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the application's use cases to their infrastructure.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the application's dependency graph on top of an
// open database connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderBookUoWFactory() commands.OrderBookUoWFactory {
	return FuncOrderBookUoWFactory(func() commands.OrderBookUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() commands.DeleteItemCommandHandler {
	return commands.NewDeleteItemCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRenameItemCommandHandler() commands.RenameItemCommandHandler {
	return commands.NewRenameItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateChangeItemDescriptionCommandHandler() commands.ChangeItemDescriptionCommandHandler {
	return commands.NewChangeItemDescriptionCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateChangeItemPriceCommandHandler() commands.ChangeItemPriceCommandHandler {
	return commands.NewChangeItemPriceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateChangeItemStockCommandHandler() commands.ChangeItemStockCommandHandler {
	return commands.NewChangeItemStockCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderBookUoWFactory())
}

func (c *CompositionRoot) CreateAddItemToCartCommandHandler() commands.AddItemToCartCommandHandler {
	return commands.NewAddItemToCartCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemFromCartCommandHandler() commands.RemoveItemFromCartCommandHandler {
	return commands.NewRemoveItemFromCartCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateSetCartQuantityCommandHandler() commands.SetCartQuantityCommandHandler {
	return commands.NewSetCartQuantityCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderBookUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliverySlotCommandHandler() commands.AssignDeliverySlotCommandHandler {
	return commands.NewAssignDeliverySlotCommandHandler(c.orderBookUoWFactory())
}

func (c *CompositionRoot) CreateNotifyAbandonedCartCommandHandler() commands.NotifyAbandonedCartCommandHandler {
	return commands.NewNotifyAbandonedCartCommandHandler(c.orderBookUoWFactory())
}

func (c *CompositionRoot) CreateGetItemsQueryHandler() queries.GetItemsQueryHandler {
	return queries.NewGetItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAbandonedCartOrdersQueryHandler() queries.GetAbandonedCartOrdersQueryHandler {
	return queries.NewGetAbandonedCartOrdersQueryHandler(c.gormDB)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderBookUoWFactory func() commands.OrderBookUoW

func (f FuncOrderBookUoWFactory) Create() commands.OrderBookUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
