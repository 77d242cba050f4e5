package cmd

import (
	"log/slog"

	adapterhttp "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/mail"
	"workorders/internal/adapters/out/payment"
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/payoutrepo"
	"workorders/internal/adapters/out/postgres/workerrepo"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/jobs"
	"workorders/internal/notifications"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	bus        *notifications.Bus
	processor  *payment.Client
	mailer     *mail.LogDispatcher
	schedules  jobs.Schedules
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	processor, err := payment.NewClient(config.PaymentAPIURL, config.PaymentAPIKey, payment.DefaultTimeout)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        notifications.NewBus(notifications.DefaultKeepaliveInterval, logger),
		processor:  processor,
		mailer:     mail.NewLogDispatcher(logger),
		schedules: jobs.Schedules{
			Reconciliation: config.ReconciliationSchedule,
			PayoutQueue:    config.PayoutSchedule,
		},
		logger: logger,
	}, nil
}

// NotificationBus returns the shared notification bus; main starts and
// stops it, the HTTP server registers connections on it.
func (c *CompositionRoot) NotificationBus() *notifications.Bus {
	return c.bus
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateRecordOrderCompletionCommandHandler() commands.RecordOrderCompletionCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordOrderCompletionCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceBidCommandHandler() commands.PlaceBidCommandHandler {
	var f commands.BiddingUoWFactory = FuncBiddingUoWFactory(func() commands.BiddingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceBidCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateAcceptBidCommandHandler() commands.AcceptBidCommandHandler {
	var f commands.BiddingUoWFactory = FuncBiddingUoWFactory(func() commands.BiddingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptBidCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateRejectBidCommandHandler() commands.RejectBidCommandHandler {
	var f commands.BiddingUoWFactory = FuncBiddingUoWFactory(func() commands.BiddingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectBidCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestPayoutCommandHandler() commands.RequestPayoutCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPayoutCommandHandler(f)
}

func (c *CompositionRoot) CreateApprovePayoutCommandHandler() commands.ApprovePayoutCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApprovePayoutCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateRejectPayoutCommandHandler() commands.RejectPayoutCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectPayoutCommandHandler(f, c.bus, c.mailer)
}

func (c *CompositionRoot) CreateProcessPayoutCommandHandler() commands.ProcessPayoutCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPayoutCommandHandler(f, c.processor, c.bus)
}

func (c *CompositionRoot) CreateRecalculateBalanceCommandHandler() commands.RecalculateBalanceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecalculateBalanceCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBidsQueryHandler() queries.GetOrderBidsQueryHandler {
	return queries.NewGetOrderBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerSummaryQueryHandler() queries.GetWorkerSummaryQueryHandler {
	return queries.NewGetWorkerSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPayoutsByStatusQueryHandler() queries.GetPayoutsByStatusQueryHandler {
	return queries.NewGetPayoutsByStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the API server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(adapterhttp.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		TransitionOrder:       c.CreateTransitionOrderCommandHandler(),
		RecordOrderCompletion: c.CreateRecordOrderCompletionCommandHandler(),
		PlaceBid:              c.CreatePlaceBidCommandHandler(),
		AcceptBid:             c.CreateAcceptBidCommandHandler(),
		RejectBid:             c.CreateRejectBidCommandHandler(),
		RequestPayout:         c.CreateRequestPayoutCommandHandler(),
		ApprovePayout:         c.CreateApprovePayoutCommandHandler(),
		RejectPayout:          c.CreateRejectPayoutCommandHandler(),
		ProcessPayout:         c.CreateProcessPayoutCommandHandler(),
		RecalculateBalance:    c.CreateRecalculateBalanceCommandHandler(),

		GetOpenOrders:      c.CreateGetOpenOrdersQueryHandler(),
		GetOrderBids:       c.CreateGetOrderBidsQueryHandler(),
		GetWorkerSummary:   c.CreateGetWorkerSummaryQueryHandler(),
		GetPayoutsByStatus: c.CreateGetPayoutsByStatusQueryHandler(),
	}, c.bus)
}

// CreateJobManager wires the background jobs. The jobs enumerate work
// through repositories bound to the shared connection, outside any
// transaction; each unit of work they trigger opens its own.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRecalculateBalanceCommandHandler(),
		workerrepo.NewGormWorkerRepository(c.gormDB, noopTracker{}),
		c.CreateProcessPayoutCommandHandler(),
		payoutrepo.NewGormPayoutRepository(c.gormDB, noopTracker{}),
		c.schedules,
		c.logger,
	)
}

// noopTracker satisfies the repositories' tracker dependency for reads that
// happen outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBiddingUoWFactory func() commands.BiddingUoW

func (f FuncBiddingUoWFactory) Create() commands.BiddingUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncPayoutUoWFactory func() commands.PayoutUoW

func (f FuncPayoutUoWFactory) Create() commands.PayoutUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
