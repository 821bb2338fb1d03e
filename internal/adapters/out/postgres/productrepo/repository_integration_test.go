package productrepo_test

import (
	"context"
	"testing"

	"meatmanager/internal/adapters/out/postgres/productrepo"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *testdb.Postgres
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = productrepo.NewGormProductRepository(suite.pg.DB, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) addProduct(name, sell, buy string, active bool) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), name, "kg",
		decimal.RequireFromString(sell), decimal.RequireFromString(buy), active)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_KeepsPrecision() {
	p := suite.addProduct("Rinderhack", "12.90", "8.40", true)

	loaded, err := suite.repository.Get(context.Background(), p.ID())

	suite.Require().NoError(err)
	suite.Equal("Rinderhack", loaded.Name())
	suite.Equal("kg", loaded.Unit())
	suite.True(decimal.RequireFromString("12.90").Equal(loaded.SellPrice()))
	suite.True(decimal.RequireFromString("8.40").Equal(loaded.BuyPrice()))
	suite.True(loaded.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	p := suite.addProduct("Rinderhack", "12.90", "8.40", true)
	suite.Require().NoError(p.Edit("Rinderhack fein", "Pck", decimal.RequireFromString("13.50"), decimal.Zero, false))

	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Rinderhack fein", loaded.Name())
	suite.Equal("Pck", loaded.Unit())
	suite.True(decimal.RequireFromString("13.50").Equal(loaded.SellPrice()))
	suite.True(loaded.BuyPrice().IsZero())
	suite.False(loaded.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAll_SortedAndFiltered() {
	suite.addProduct("Wurst", "3", "2", true)
	suite.addProduct("Bratwurst", "9", "6", false)
	suite.addProduct("Leberkäse", "7", "4", true)

	all, err := suite.repository.GetAll(context.Background(), false)
	suite.Require().NoError(err)
	active, err := suite.repository.GetAll(context.Background(), true)
	suite.Require().NoError(err)

	suite.Require().Len(all, 3)
	suite.Equal("Bratwurst", all[0].Name())
	suite.Equal("Leberkäse", all[1].Name())
	suite.Equal("Wurst", all[2].Name())
	suite.Require().Len(active, 2)
	suite.Equal("Leberkäse", active[0].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	p := suite.addProduct("Wurst", "3", "2", true)

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, p.ID()), errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_ReferencedByOrderItem() {
	ctx := context.Background()
	p := suite.addProduct("Wurst", "3", "2", true)
	customerID := kernel.NewUUID().Bytes()
	roundID := kernel.NewUUID().Bytes()
	orderID := kernel.NewUUID().Bytes()
	suite.Require().NoError(suite.pg.DB.Exec(
		"INSERT INTO customers (id, name, phone, active, notes) VALUES (?, 'Anna', '', true, '')", customerID).Error)
	suite.Require().NoError(suite.pg.DB.Exec(
		"INSERT INTO rounds (id, date, travel_km, is_active) VALUES (?, '2026-03-06', 0, false)", roundID).Error)
	suite.Require().NoError(suite.pg.DB.Exec(
		"INSERT INTO orders (id, customer_id, round_id, source, comment, paid, picked_up, created_at) "+
			"VALUES (?, ?, ?, 'call', '', false, false, now())", orderID, customerID, roundID).Error)
	suite.Require().NoError(suite.pg.DB.Exec(
		"INSERT INTO order_items (id, order_id, product_id, quantity, sell_price, buy_price) VALUES (?, ?, ?, 1, 3, 2)",
		kernel.NewUUID().Bytes(), orderID, p.ID().Bytes()).Error)

	err := suite.repository.Delete(ctx, p.ID())

	suite.Require().ErrorIs(err, errs.ErrObjectIsReferenced)
	_, err = suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
