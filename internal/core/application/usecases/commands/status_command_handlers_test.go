package commands_test

import (
	"testing"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		flag     commands.OrderFlag
		paid     bool
		pickedUp bool
	}{
		{commands.FlagPaid, true, false},
		{commands.FlagPickedUp, false, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.flag), func(t *testing.T) {
			o := existingOrder(t, map[*product.Product]string{testProduct(t, "Wurst", "3", "2"): "1"})
			cmd, err := commands.NewMarkOrderCommand(o.ID(), tc.flag)
			require.NoError(t, err)

			uow := newMockUoW()
			uow.expectTx(true)
			uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
			uow.orders.On("Update", mock.Anything, o).Return(nil).Once()

			h := commands.NewMarkOrderCommandHandler(orderFactory{uow})
			require.NoError(t, h.Handle(t.Context(), cmd))

			assert.Equal(t, tc.paid, o.IsPaid())
			assert.Equal(t, tc.pickedUp, o.IsPickedUp())
			uow.assertAll(t)
		})
	}
}

func TestMarkRoundOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("paid uses one bulk update", func(t *testing.T) {
		r := testRound(t)
		cmd, err := commands.NewMarkRoundOrdersCommand(r.ID(), commands.FlagPaid)
		require.NoError(t, err)
		uow := newMockUoW()
		uow.expectTx(true)
		uow.rounds.On("Get", mock.Anything, r.ID()).Return(r, nil).Once()
		uow.orders.On("MarkAllPaid", mock.Anything, r.ID()).Return(nil).Once()

		h := commands.NewMarkRoundOrdersCommandHandler(orderFactory{uow})

		require.NoError(t, h.Handle(t.Context(), cmd))
		uow.assertAll(t)
	})

	t.Run("picked up", func(t *testing.T) {
		r := testRound(t)
		cmd, err := commands.NewMarkRoundOrdersCommand(r.ID(), commands.FlagPickedUp)
		require.NoError(t, err)
		uow := newMockUoW()
		uow.expectTx(true)
		uow.rounds.On("Get", mock.Anything, r.ID()).Return(r, nil).Once()
		uow.orders.On("MarkAllPickedUp", mock.Anything, r.ID()).Return(nil).Once()

		h := commands.NewMarkRoundOrdersCommandHandler(orderFactory{uow})

		require.NoError(t, h.Handle(t.Context(), cmd))
		uow.assertAll(t)
	})

	t.Run("unknown round", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewMarkRoundOrdersCommand(id, commands.FlagPaid)
		require.NoError(t, err)
		uow := newMockUoW()
		uow.expectTx(false)
		uow.rounds.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("round", id)).Once()

		h := commands.NewMarkRoundOrdersCommandHandler(orderFactory{uow})

		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
		uow.orders.AssertNotCalled(t, "MarkAllPaid", mock.Anything, mock.Anything)
	})
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(id)
	require.NoError(t, err)
	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Delete", mock.Anything, id).Return(nil).Once()

	h := commands.NewDeleteOrderCommandHandler(orderFactory{uow})

	require.NoError(t, h.Handle(t.Context(), cmd))
	uow.assertAll(t)
}
