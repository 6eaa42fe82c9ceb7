package cmd

import (
	"log/slog"

	httpin "tawsil/internal/adapters/in/http"
	"tawsil/internal/adapters/out/identity"
	"tawsil/internal/adapters/out/postgres"
	"tawsil/internal/core/application/usecases/commands"
	"tawsil/internal/core/application/usecases/queries"
	"tawsil/internal/core/ports"
	"tawsil/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimRoleCommandHandler() commands.ClaimRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRoleCommandHandler() commands.AssignRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateEditLocationCommandHandler() commands.EditLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteLocationCommandHandler() commands.DeleteLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderPageQueryHandler() queries.GetOrderPageQueryHandler {
	return queries.NewGetOrderPageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnOrdersQueryHandler() queries.GetOwnOrdersQueryHandler {
	return queries.NewGetOwnOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllUsersQueryHandler() queries.GetAllUsersQueryHandler {
	return queries.NewGetAllUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllLocationsQueryHandler() queries.GetAllLocationsQueryHandler {
	return queries.NewGetAllLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePrincipalResolver() ports.PrincipalResolver {
	return identity.NewRepositoryPrincipalResolver(c.uowFactory)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateEditOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateClaimRoleCommandHandler(),
		c.CreateAssignRoleCommandHandler(),
		c.CreateCreateLocationCommandHandler(),
		c.CreateEditLocationCommandHandler(),
		c.CreateDeleteLocationCommandHandler(),
		c.CreateGetOrderPageQueryHandler(),
		c.CreateGetOwnOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllUsersQueryHandler(),
		c.CreateGetAllLocationsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}
