package cmd

import (
	"log/slog"

	"fieldservice/internal/adapters/in/http"
	"fieldservice/internal/adapters/out/postgres"
	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs together.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the application object graph on top of the
// given database connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignMasterCommandHandler() commands.AssignMasterCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignMasterCommandHandler(f, services.NewMasterSelector())
}

func (c *CompositionRoot) CreateAttachEvidenceCommandHandler() commands.AttachEvidenceCommandHandler {
	var f commands.EvidenceUoWFactory = FuncEvidenceUoWFactory(func() commands.EvidenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachEvidenceCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.EvidenceUoWFactory = FuncEvidenceUoWFactory(func() commands.EvidenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, services.NewCompletionPolicy())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMastersQueryHandler() queries.GetAllMastersQueryHandler {
	return queries.NewGetAllMastersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMasterQueryHandler() queries.GetMasterQueryHandler {
	return queries.NewGetMasterQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextPendingOrderQueryHandler() queries.GetNextPendingOrderQueryHandler {
	return queries.NewGetNextPendingOrderQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the Echo-facing server with all handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignMasterCommandHandler(),
		c.CreateAttachEvidenceCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllMastersQueryHandler(),
		c.CreateGetMasterQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetNextPendingOrderQueryHandler(),
		c.CreateAssignMasterCommandHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncEvidenceUoWFactory func() commands.EvidenceUoW

func (f FuncEvidenceUoWFactory) Create() commands.EvidenceUoW {
	return f()
}
