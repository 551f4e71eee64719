package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlanTripCommandHandler() commands.PlanTripCommandHandler {
	var f commands.PlanTripUoWFactory = FuncPlanTripUoWFactory(func() commands.PlanTripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanTripCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessEventCommandHandler() commands.ProcessEventCommandHandler {
	var f commands.ProcessEventUoWFactory = FuncProcessEventUoWFactory(func() commands.ProcessEventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessEventCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetTripReportQueryHandler() queries.GetTripReportQueryHandler {
	return queries.NewGetTripReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFreeDriversQueryHandler() queries.GetFreeDriversQueryHandler {
	return queries.NewGetFreeDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFreeVehiclesQueryHandler() queries.GetFreeVehiclesQueryHandler {
	return queries.NewGetFreeVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

type FuncPlanTripUoWFactory func() commands.PlanTripUoW

func (f FuncPlanTripUoWFactory) Create() commands.PlanTripUoW {
	return f()
}

type FuncProcessEventUoWFactory func() commands.ProcessEventUoW

func (f FuncProcessEventUoWFactory) Create() commands.ProcessEventUoW {
	return f()
}
