package commands

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/services"
)

// RecalculateBalanceCommandHandler rebuilds a worker's balance from first
// principles: the sum of earnings across all credited orders, minus every
// payout request that still holds or has consumed a reservation.
//
// Earnings are recomputed at the worker's current tier rate, so a
// recalculation after a tier change values past orders at today's rate.
// The result overwrites the stored balance.
type RecalculateBalanceCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecalculateBalanceCommandHandler creates a handler for balance recalculation.
func NewRecalculateBalanceCommandHandler(uowFactory UoWFactory) RecalculateBalanceCommandHandler {
	return RecalculateBalanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recalculation command.
func (h RecalculateBalanceCommandHandler) Handle(
	ctx context.Context,
	command RecalculateBalanceCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	progress, err := uow.WorkerRepository().Get(ctx, command.WorkerID())
	if err != nil {
		return err
	}

	schedule, err := uow.TierRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	tier, err := schedule.ByLevel(progress.Level())
	if err != nil {
		return err
	}

	countedOrders, err := uow.OrderRepository().ListCountedByWorker(ctx, command.WorkerID())
	if err != nil {
		return err
	}

	calculator := services.NewEarningsCalculator()
	var earned kernel.Money
	for _, countedOrder := range countedOrders {
		amount, err := calculator.ComputePayout(
			countedOrder.Pages(), countedOrder.Slides(), countedOrder.WorkType(), tier,
		)
		if err != nil {
			return err
		}
		earned = earned.Add(amount)
	}

	reserved, err := uow.PayoutRepository().SumNonRejectedForWorker(ctx, command.WorkerID())
	if err != nil {
		return err
	}

	// Paid-out and reserved amounts can exceed re-valued earnings when tier
	// rates moved; the balance floors at zero rather than going negative.
	balance, err := earned.Sub(reserved)
	if err != nil {
		balance = kernel.Money{}
	}

	if err = uow.WorkerRepository().SetBalance(ctx, command.WorkerID(), balance); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
