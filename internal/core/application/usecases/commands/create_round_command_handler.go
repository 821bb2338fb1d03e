package commands

import (
	"context"
	"time"

	"meatmanager/internal/core/domain/model/round"
)

// CreateRoundCommandHandler stores a new round and activates it in the same
// transaction, so the previously active round is switched off only if the
// insert succeeds.
type CreateRoundCommandHandler struct {
	uowFactory RoundUoWFactory
	now        func() time.Time
}

func NewCreateRoundCommandHandler(uowFactory RoundUoWFactory) CreateRoundCommandHandler {
	return CreateRoundCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *CreateRoundCommandHandler) Handle(ctx context.Context, cmd CreateRoundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	date := cmd.Date()
	if date.IsZero() {
		date = h.now()
	}

	r, err := round.NewRound(cmd.RoundID(), date, cmd.TravelKm())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RoundRepository()
	if err = repo.Add(ctx, r); err != nil {
		return err
	}
	if err = repo.Activate(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
