package commands_test

import (
	"errors"
	"testing"
	"time"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/round"
	"meatmanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRoundCommandHandler_Handle_AddsAndActivates(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRoundCommand(id, time.Date(2026, time.March, 6, 15, 30, 0, 0, time.UTC), dec("42.5"))
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(true)
	var stored *round.Round
	mock.InOrder(
		uow.rounds.On("Add", mock.Anything, mock.AnythingOfType("*round.Round")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*round.Round) }).
			Return(nil).Once(),
		uow.rounds.On("Activate", mock.Anything, id).Return(nil).Once(),
	)

	h := commands.NewCreateRoundCommandHandler(roundFactory{uow})
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, stored)
	assert.Equal(t, "2026-03-06", stored.Date().Format(time.DateOnly))
	assert.True(t, dec("42.50").Equal(stored.TravelKm()))
	uow.assertAll(t)
}

func TestCreateRoundCommandHandler_Handle_ZeroDateMeansToday(t *testing.T) {
	cmd, err := commands.NewCreateRoundCommand(kernel.NewUUID(), time.Time{}, dec("0"))
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(true)
	var stored *round.Round
	uow.rounds.On("Add", mock.Anything, mock.AnythingOfType("*round.Round")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*round.Round) }).
		Return(nil).Once()
	uow.rounds.On("Activate", mock.Anything, cmd.RoundID()).Return(nil).Once()

	h := commands.NewCreateRoundCommandHandler(roundFactory{uow})
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, time.Now().Format(time.DateOnly), stored.Date().Format(time.DateOnly))
}

func TestCreateRoundCommandHandler_Handle_NegativeKm(t *testing.T) {
	cmd, err := commands.NewCreateRoundCommand(kernel.NewUUID(), time.Time{}, dec("-1"))
	require.NoError(t, err)
	uow := newMockUoW()

	h := commands.NewCreateRoundCommandHandler(roundFactory{uow})
	err = h.Handle(t.Context(), cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestActivateRoundCommandHandler_Handle(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewActivateRoundCommand(id)
		require.NoError(t, err)
		uow := newMockUoW()
		uow.expectTx(true)
		uow.rounds.On("Activate", mock.Anything, id).Return(nil).Once()

		h := commands.NewActivateRoundCommandHandler(roundFactory{uow})

		require.NoError(t, h.Handle(t.Context(), cmd))
		uow.assertAll(t)
	})

	t.Run("unknown round rolls back", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewActivateRoundCommand(id)
		require.NoError(t, err)
		uow := newMockUoW()
		uow.expectTx(false)
		uow.rounds.On("Activate", mock.Anything, id).Return(errs.NewObjectNotFoundError("round", id)).Once()

		h := commands.NewActivateRoundCommandHandler(roundFactory{uow})
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.assertAll(t)
	})

	t.Run("commit error is returned", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewActivateRoundCommand(id)
		require.NoError(t, err)
		uow := newMockUoW()
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(errors.New("commit error")).Once()
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.rounds.On("Activate", mock.Anything, id).Return(nil).Once()

		h := commands.NewActivateRoundCommandHandler(roundFactory{uow})

		require.EqualError(t, h.Handle(t.Context(), cmd), "commit error")
	})
}
