package commands

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/guard"
)

var ErrMarkRoundOrdersCommandIsNotConstructed = errors.New(
	"MarkRoundOrdersCommand must be created via NewMarkRoundOrdersCommand constructor",
)

// MarkRoundOrdersCommand sets a flag on every order of a round at once.
type MarkRoundOrdersCommand struct { //nolint:recvcheck //using for validation
	roundID kernel.UUID
	flag    OrderFlag

	guard guard.ConstructorGuard
}

func NewMarkRoundOrdersCommand(roundID kernel.UUID, flag OrderFlag) (MarkRoundOrdersCommand, error) {
	if err := errors.Join(roundID.Validate(), flag.Validate()); err != nil {
		return MarkRoundOrdersCommand{}, err
	}

	return MarkRoundOrdersCommand{
		roundID: roundID,
		flag:    flag,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkRoundOrdersCommand) Validate() error {
	return c.guard.Validate(ErrMarkRoundOrdersCommandIsNotConstructed)
}

func (c MarkRoundOrdersCommand) RoundID() kernel.UUID { return c.roundID }
func (c MarkRoundOrdersCommand) Flag() OrderFlag      { return c.flag }

// MarkRoundOrdersCommandHandler issues one bulk update. Running it twice
// leaves the same state.
type MarkRoundOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkRoundOrdersCommandHandler(uowFactory OrderUoWFactory) MarkRoundOrdersCommandHandler {
	return MarkRoundOrdersCommandHandler{uowFactory: uowFactory}
}

func (h *MarkRoundOrdersCommandHandler) Handle(ctx context.Context, cmd MarkRoundOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RoundRepository().Get(ctx, cmd.RoundID()); err != nil {
		return err
	}

	orders := uow.OrderRepository()
	var err error
	switch cmd.Flag() {
	case FlagPaid:
		err = orders.MarkAllPaid(ctx, cmd.RoundID())
	case FlagPickedUp:
		err = orders.MarkAllPickedUp(ctx, cmd.RoundID())
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
