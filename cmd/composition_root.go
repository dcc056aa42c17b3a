package cmd

import (
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartVerificationCommandHandler() commands.StartVerificationCommandHandler {
	return commands.NewStartVerificationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestBypassCommandHandler() commands.RequestBypassCommandHandler {
	return commands.NewRequestBypassCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResolveBypassCommandHandler() commands.ResolveBypassCommandHandler {
	return commands.NewResolveBypassCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteProcessCommandHandler() commands.CompleteProcessCommandHandler {
	return commands.NewCompleteProcessCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteBypassedProcessCommandHandler() commands.CompleteBypassedProcessCommandHandler {
	return commands.NewCompleteBypassedProcessCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationQueueQueryHandler() queries.GetStationQueueQueryHandler {
	return queries.NewGetStationQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingBypassRequestsQueryHandler() queries.GetPendingBypassRequestsQueryHandler {
	return queries.NewGetPendingBypassRequestsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
