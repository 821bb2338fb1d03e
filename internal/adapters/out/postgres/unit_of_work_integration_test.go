package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "meatmanager/internal/adapters/out/postgres"
	"meatmanager/internal/adapters/out/postgres/roundrepo"
	"meatmanager/internal/core/domain/model/customer"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/round"
	"meatmanager/internal/core/ports"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *testdb.Postgres
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newRound(day int) *round.Round {
	r, err := round.NewRound(kernel.NewUUID(), time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC), decimal.Zero)
	suite.Require().NoError(err)
	return r
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(model any) int64 {
	var n int64
	suite.Require().NoError(suite.pg.DB.Model(model).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_AddAndActivateTogether() {
	ctx := context.Background()
	old := suite.newRound(6)
	suite.Require().NoError(suite.factory.Create().RoundRepository().Add(ctx, old))
	suite.Require().NoError(suite.factory.Create().RoundRepository().Activate(ctx, old.ID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	fresh := suite.newRound(13)
	suite.Require().NoError(uow.RoundRepository().Add(ctx, fresh))
	suite.Require().NoError(uow.RoundRepository().Activate(ctx, fresh.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	var active []roundrepo.RoundDTO
	suite.Require().NoError(suite.pg.DB.Where("is_active = ?", true).Find(&active).Error)
	suite.Require().Len(active, 1)
	suite.Equal(fresh.ID().Bytes(), active[0].ID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c, err := customer.NewCustomer(kernel.NewUUID(), "Anna", "", true, "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.RoundRepository().Add(ctx, suite.newRound(6)))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(suite.countRows(&roundrepo.RoundDTO{}))
	_, err = suite.factory.Create().CustomerRepository().Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFailedActivateLeavesPreviousRoundActive() {
	ctx := context.Background()
	current := suite.newRound(6)
	suite.Require().NoError(suite.factory.Create().RoundRepository().Add(ctx, current))
	suite.Require().NoError(suite.factory.Create().RoundRepository().Activate(ctx, current.ID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.RoundRepository().Activate(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NoError(uow.Rollback(ctx))

	loaded, err := suite.factory.Create().RoundRepository().Get(ctx, current.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsActive())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAggregateTracking() {
	ctx := context.Background()
	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.pg.DB).Create()
	gormUoW, ok := uow.(*postgresadapter.GormUnitOfWork)
	suite.Require().True(ok)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RoundRepository().Add(ctx, suite.newRound(6)))
	suite.Require().NoError(uow.RoundRepository().Add(ctx, suite.newRound(13)))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(2, gormUoW.TrackedCount())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
