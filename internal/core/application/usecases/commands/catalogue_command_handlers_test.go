package commands_test

import (
	"testing"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/domain/model/customer"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), commands.CustomerDetails{
		Name: " Anna Berger ", Phone: "0171", Active: true,
	})
	require.NoError(t, err)
	uow := newMockUoW()
	uow.expectTx(true)
	var stored *customer.Customer
	uow.customers.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*customer.Customer) }).
		Return(nil).Once()

	h := commands.NewCreateCustomerCommandHandler(customerFactory{uow})
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, "Anna Berger", stored.Name())
	assert.True(t, stored.IsActive())
	uow.assertAll(t)
}

func TestCreateCustomerCommandHandler_Handle_NameRequired(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), commands.CustomerDetails{Name: "  "})
	require.NoError(t, err)
	uow := newMockUoW()

	h := commands.NewCreateCustomerCommandHandler(customerFactory{uow})

	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrValueIsRequired)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestEditCustomerCommandHandler_Handle(t *testing.T) {
	c := testCustomer(t)
	cmd, err := commands.NewEditCustomerCommand(c.ID(), commands.CustomerDetails{Name: "Anna B.", Notes: "nur bar"})
	require.NoError(t, err)
	uow := newMockUoW()
	uow.expectTx(true)
	uow.customers.On("Get", mock.Anything, c.ID()).Return(c, nil).Once()
	uow.customers.On("Update", mock.Anything, c).Return(nil).Once()

	h := commands.NewEditCustomerCommandHandler(customerFactory{uow})
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, "Anna B.", c.Name())
	assert.False(t, c.IsActive())
	assert.Equal(t, "nur bar", c.Notes())
	uow.assertAll(t)
}

func TestCreateProductCommandHandler_Handle_DefaultsUnit(t *testing.T) {
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), commands.ProductDetails{
		Name: "Rinderhack", SellPrice: dec("12.90"), BuyPrice: dec("8.40"), Active: true,
	})
	require.NoError(t, err)
	uow := newMockUoW()
	uow.expectTx(true)
	var stored *product.Product
	uow.products.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*product.Product) }).
		Return(nil).Once()

	h := commands.NewCreateProductCommandHandler(productFactory{uow})
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, product.DefaultUnit, stored.Unit())
	uow.assertAll(t)
}

func TestEditProductCommandHandler_Handle_NegativePrice(t *testing.T) {
	p := testProduct(t, "Rinderhack", "12.90", "8.40")
	cmd, err := commands.NewEditProductCommand(p.ID(), commands.ProductDetails{
		Name: "Rinderhack", SellPrice: dec("-1"), BuyPrice: dec("8.40"), Active: true,
	})
	require.NoError(t, err)
	uow := newMockUoW()
	uow.expectTx(false)
	uow.products.On("Get", mock.Anything, p.ID()).Return(p, nil).Once()

	h := commands.NewEditProductCommandHandler(productFactory{uow})
	err = h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.True(t, dec("12.90").Equal(p.SellPrice()))
	uow.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteProductCommandHandler_Handle_Referenced(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(id)
	require.NoError(t, err)
	uow := newMockUoW()
	uow.expectTx(false)
	uow.products.On("Delete", mock.Anything, id).
		Return(errs.NewObjectIsReferencedError("product", id.String(), "order items")).Once()

	h := commands.NewDeleteProductCommandHandler(productFactory{uow})

	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrObjectIsReferenced)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.assertAll(t)
}
