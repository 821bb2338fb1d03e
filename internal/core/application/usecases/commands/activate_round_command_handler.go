package commands

import (
	"context"
)

// ActivateRoundCommandHandler runs both activation statements in one
// transaction. An unknown round rolls back, leaving the previous state intact.
type ActivateRoundCommandHandler struct {
	uowFactory RoundUoWFactory
}

func NewActivateRoundCommandHandler(uowFactory RoundUoWFactory) ActivateRoundCommandHandler {
	return ActivateRoundCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ActivateRoundCommandHandler) Handle(ctx context.Context, cmd ActivateRoundCommand) error {
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

	if err := uow.RoundRepository().Activate(ctx, cmd.RoundID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
