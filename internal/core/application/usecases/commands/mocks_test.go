package commands_test

import (
	"context"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/domain/model/customer"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/order"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/core/domain/model/round"
	"meatmanager/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context, activeOnly bool) ([]*product.Product, error) {
	args := m.Called(ctx, activeOnly)
	ps, _ := args.Get(0).([]*product.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockRoundRepository struct{ mock.Mock }

func (m *MockRoundRepository) Add(ctx context.Context, r *round.Round) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRoundRepository) Get(ctx context.Context, id kernel.UUID) (*round.Round, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*round.Round)
	return r, args.Error(1)
}

func (m *MockRoundRepository) Activate(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) MarkAllPaid(ctx context.Context, roundID kernel.UUID) error {
	return m.Called(ctx, roundID).Error(0)
}

func (m *MockOrderRepository) MarkAllPickedUp(ctx context.Context, roundID kernel.UUID) error {
	return m.Called(ctx, roundID).Error(0)
}

// MockUoW satisfies every unit-of-work view of the commands package.
type MockUoW struct {
	mock.Mock
	customers *MockCustomerRepository
	products  *MockProductRepository
	rounds    *MockRoundRepository
	orders    *MockOrderRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		customers: new(MockCustomerRepository),
		products:  new(MockProductRepository),
		rounds:    new(MockRoundRepository),
		orders:    new(MockOrderRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CustomerRepository() ports.CustomerRepository { return m.customers }
func (m *MockUoW) ProductRepository() ports.ProductRepository   { return m.products }
func (m *MockUoW) RoundRepository() ports.RoundRepository       { return m.rounds }
func (m *MockUoW) OrderRepository() ports.OrderRepository       { return m.orders }

// expectTx sets up a successful Begin, an optional Commit and the deferred Rollback.
func (m *MockUoW) expectTx(commit bool) {
	m.On("Begin", mock.Anything).Return(nil).Once()
	if commit {
		m.On("Commit", mock.Anything).Return(nil).Once()
	}
	m.On("Rollback", mock.Anything).Return(nil)
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.customers.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.rounds.AssertExpectations(t)
	m.orders.AssertExpectations(t)
}

type customerFactory struct{ uow *MockUoW }

func (f customerFactory) Create() commands.CustomerUoW { return f.uow }

type productFactory struct{ uow *MockUoW }

func (f productFactory) Create() commands.ProductUoW { return f.uow }

type roundFactory struct{ uow *MockUoW }

func (f roundFactory) Create() commands.RoundUoW { return f.uow }

type orderFactory struct{ uow *MockUoW }

func (f orderFactory) Create() commands.OrderUoW { return f.uow }
