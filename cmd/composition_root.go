package cmd

import (
	"log/slog"

	"pos/internal/adapters/out/postgres"
	"pos/internal/adapters/out/postgres/customerrepo"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/services"

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

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) templateUoWFactory() commands.TemplateUoWFactory {
	return FuncTemplateUoWFactory(func() commands.TemplateUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bulkOperationUoWFactory() commands.BulkOperationUoWFactory {
	return FuncBulkOperationUoWFactory(func() commands.BulkOperationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerReader() *customerrepo.GormCustomerReader {
	return customerrepo.NewGormCustomerReader(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.customerReader())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderTemplateCommandHandler() commands.CreateOrderTemplateCommandHandler {
	return commands.NewCreateOrderTemplateCommandHandler(c.templateUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderTemplateCommandHandler() commands.DeleteOrderTemplateCommandHandler {
	return commands.NewDeleteOrderTemplateCommandHandler(c.templateUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderFromTemplateCommandHandler() commands.CreateOrderFromTemplateCommandHandler {
	return commands.NewCreateOrderFromTemplateCommandHandler(c.crossAggregateUoWFactory(), c.customerReader())
}

func (c *CompositionRoot) CreateExecuteBulkOperationCommandHandler() commands.ExecuteBulkOperationCommandHandler {
	return commands.NewExecuteBulkOperationCommandHandler(
		c.orderUoWFactory(), c.bulkOperationUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateProcessRecurringOrdersCommandHandler() commands.ProcessRecurringOrdersCommandHandler {
	return commands.NewProcessRecurringOrdersCommandHandler(
		c.orderUoWFactory(), services.NewRecurringOrderScheduler(), c.logger)
}

func (c *CompositionRoot) CreateMarkInstallmentsOverdueCommandHandler() commands.MarkInstallmentsOverdueCommandHandler {
	return commands.NewMarkInstallmentsOverdueCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderMetricsQueryHandler() queries.GetOrderMetricsQueryHandler {
	return queries.NewGetOrderMetricsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersDueTodayQueryHandler() queries.GetOrdersDueTodayQueryHandler {
	return queries.NewGetOrdersDueTodayQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingApprovalOrdersQueryHandler() queries.GetPendingApprovalOrdersQueryHandler {
	return queries.NewGetPendingApprovalOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTemplatesQueryHandler() queries.ListTemplatesQueryHandler {
	return queries.NewListTemplatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBulkOperationQueryHandler() queries.GetBulkOperationQueryHandler {
	return queries.NewGetBulkOperationQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTemplateUoWFactory func() commands.TemplateUoW

func (f FuncTemplateUoWFactory) Create() commands.TemplateUoW {
	return f()
}

type FuncBulkOperationUoWFactory func() commands.BulkOperationUoW

func (f FuncBulkOperationUoWFactory) Create() commands.BulkOperationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
