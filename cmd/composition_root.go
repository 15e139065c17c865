package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"pos/internal/adapters/out/notifier"
	"pos/internal/adapters/out/postgres"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/ports"

	"gorm.io/gorm"
)

const defaultWebhookTimeout = 5 * time.Second

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	timeout := defaultWebhookTimeout
	if seconds, err := strconv.Atoi(config.WebhookTimeoutSeconds); err == nil && seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier.NewWebhookNotifier(config.WebhookURL, timeout, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.commandUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.commandUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.commandUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDelayOrderCommandHandler() commands.DelayOrderCommandHandler {
	return commands.NewDelayOrderCommandHandler(c.commandUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkOrderDoneCommandHandler() commands.MarkOrderDoneCommandHandler {
	return commands.NewMarkOrderDoneCommandHandler(c.commandUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.commandUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderByReferenceCommandHandler() commands.CancelOrderByReferenceCommandHandler {
	return commands.NewCancelOrderByReferenceCommandHandler(c.commandUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteItemCommandHandler() commands.CompleteItemCommandHandler {
	return commands.NewCompleteItemCommandHandler(c.commandUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	var f queries.OrderUoWFactory = FuncQueryOrderUoWFactory(func() queries.OrderUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetOrderQueryHandler(f)
}

func (c *CompositionRoot) CreateGetOverdueDelayedOrdersQueryHandler() queries.GetOverdueDelayedOrdersQueryHandler {
	return queries.NewGetOverdueDelayedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) commandUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncQueryOrderUoWFactory func() queries.OrderUoW

func (f FuncQueryOrderUoWFactory) Create() queries.OrderUoW {
	return f()
}
