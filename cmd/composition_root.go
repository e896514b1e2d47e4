package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateEditCourierCommandHandler() commands.EditCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierQueryHandler() queries.GetCourierQueryHandler {
	return queries.NewGetCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCourierRatingQueryHandler() queries.CourierRatingQueryHandler {
	return queries.NewCourierRatingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCourierEarningsQueryHandler() queries.CourierEarningsQueryHandler {
	return queries.NewCourierEarningsQueryHandler(c.gormDB)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
