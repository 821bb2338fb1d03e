package cmd

import (
	httpin "meatmanager/internal/adapters/in/http"
	"meatmanager/internal/adapters/out/postgres"
	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/application/usecases/queries"
	"meatmanager/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	calculator services.ProfitCalculator
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	calculator, err := services.NewProfitCalculator(cfg.KmRate)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: calculator,
	}, nil
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) roundUoWFactory() commands.RoundUoWFactory {
	return FuncRoundUoWFactory(func() commands.RoundUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRoundCommandHandler() commands.CreateRoundCommandHandler {
	return commands.NewCreateRoundCommandHandler(c.roundUoWFactory())
}

func (c *CompositionRoot) CreateActivateRoundCommandHandler() commands.ActivateRoundCommandHandler {
	return commands.NewActivateRoundCommandHandler(c.roundUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderCommandHandler() commands.MarkOrderCommandHandler {
	return commands.NewMarkOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkRoundOrdersCommandHandler() commands.MarkRoundOrdersCommandHandler {
	return commands.NewMarkRoundOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateEditCustomerCommandHandler() commands.EditCustomerCommandHandler {
	return commands.NewEditCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateEditProductCommandHandler() commands.EditProductCommandHandler {
	return commands.NewEditProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateGetRoundsQueryHandler() queries.GetRoundsQueryHandler {
	return queries.NewGetRoundsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShoppingListQueryHandler() queries.GetShoppingListQueryHandler {
	return queries.NewGetShoppingListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackListQueryHandler() queries.GetPackListQueryHandler {
	return queries.NewGetPackListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoundProfitQueryHandler() queries.GetRoundProfitQueryHandler {
	return queries.NewGetRoundProfitQueryHandler(c.gormDB, c.calculator)
}

func (c *CompositionRoot) CreateGetRoundDashboardQueryHandler() queries.GetRoundDashboardQueryHandler {
	return queries.NewGetRoundDashboardQueryHandler(
		c.CreateGetShoppingListQueryHandler(),
		c.CreateGetPackListQueryHandler(),
		c.CreateGetRoundProfitQueryHandler(),
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderFormQueryHandler() queries.GetOrderFormQueryHandler {
	return queries.NewGetOrderFormQueryHandler(
		c.CreateGetRoundsQueryHandler(),
		c.CreateGetCustomersQueryHandler(),
		c.CreateGetProductsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

// HTTPHandlers collects every use case the HTTP server exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateRound:     c.CreateCreateRoundCommandHandler(),
		ActivateRound:   c.CreateActivateRoundCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		EditOrder:       c.CreateEditOrderCommandHandler(),
		DeleteOrder:     c.CreateDeleteOrderCommandHandler(),
		MarkOrder:       c.CreateMarkOrderCommandHandler(),
		MarkRoundOrders: c.CreateMarkRoundOrdersCommandHandler(),
		CreateCustomer:  c.CreateCreateCustomerCommandHandler(),
		EditCustomer:    c.CreateEditCustomerCommandHandler(),
		CreateProduct:   c.CreateCreateProductCommandHandler(),
		EditProduct:     c.CreateEditProductCommandHandler(),
		DeleteProduct:   c.CreateDeleteProductCommandHandler(),

		Rounds:       c.CreateGetRoundsQueryHandler(),
		ShoppingList: c.CreateGetShoppingListQueryHandler(),
		PackList:     c.CreateGetPackListQueryHandler(),
		Profit:       c.CreateGetRoundProfitQueryHandler(),
		Dashboard:    c.CreateGetRoundDashboardQueryHandler(),
		Order:        c.CreateGetOrderQueryHandler(),
		OrderForm:    c.CreateGetOrderFormQueryHandler(),
		Customers:    c.CreateGetCustomersQueryHandler(),
		Products:     c.CreateGetProductsQueryHandler(),
	}
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncRoundUoWFactory func() commands.RoundUoW

func (f FuncRoundUoWFactory) Create() commands.RoundUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
