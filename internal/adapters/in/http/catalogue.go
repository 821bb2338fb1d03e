package http

import (
	"net/http"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/application/usecases/queries"
	"meatmanager/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func activeOr(active *bool, fallback bool) bool {
	if active == nil {
		return fallback
	}
	return *active
}

// price reads a price entered as free text. Unreadable input counts as zero,
// a negative amount is rejected by the product itself.
func price(raw string) decimal.Decimal {
	return kernel.ParseDecimalOrZero(raw)
}

// GetCustomers handles GET /kunden/?q= - customers by name, filtered on name or phone.
func (s *Server) GetCustomers(c echo.Context) error {
	customers, err := s.h.Customers.Handle(c.Request().Context(),
		queries.NewGetCustomersQuery(c.QueryParam("q"), false))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomers(customers))
}

// CreateCustomer handles POST /kunden/neu/. Customers are active unless told otherwise.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, commands.CustomerDetails{
		Name:   req.Name,
		Phone:  req.Phone,
		Active: activeOr(req.Active, true),
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	if err = s.h.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: customerID.String()})
}

// GetCustomer handles GET /kunden/{customerId}/bearbeiten/.
func (s *Server) GetCustomer(c echo.Context) error {
	current, err := s.customer(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomer(current))
}

// EditCustomer handles POST /kunden/{customerId}/bearbeiten/. Without an
// active flag the current one is kept.
func (s *Server) EditCustomer(c echo.Context) error {
	current, err := s.customer(c)
	if err != nil {
		return err
	}

	var req CustomerRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewEditCustomerCommand(current.ID, commands.CustomerDetails{
		Name:   req.Name,
		Phone:  req.Phone,
		Active: activeOr(req.Active, current.Active),
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	if err = s.h.EditCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) customer(c echo.Context) (queries.CustomerResponse, error) {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return queries.CustomerResponse{}, err
	}
	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return queries.CustomerResponse{}, err
	}
	return s.h.Customers.One(c.Request().Context(), query)
}

// GetProducts handles GET /produkte/?q= - products by name, filtered on name or unit.
func (s *Server) GetProducts(c echo.Context) error {
	products, err := s.h.Products.Handle(c.Request().Context(),
		queries.NewGetProductsQuery(c.QueryParam("q"), false))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProducts(products))
}

// CreateProduct handles POST /produkte/neu/.
func (s *Server) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, commands.ProductDetails{
		Name:      req.Name,
		Unit:      req.Unit,
		SellPrice: price(req.SellPrice),
		BuyPrice:  price(req.BuyPrice),
		Active:    activeOr(req.Active, true),
	})
	if err != nil {
		return err
	}
	if err = s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// GetProduct handles GET /produkte/{productId}/bearbeiten/.
func (s *Server) GetProduct(c echo.Context) error {
	current, err := s.product(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProduct(current))
}

// EditProduct handles POST /produkte/{productId}/bearbeiten/. Existing order
// items keep the prices they were created with.
func (s *Server) EditProduct(c echo.Context) error {
	current, err := s.product(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewEditProductCommand(current.ID, commands.ProductDetails{
		Name:      req.Name,
		Unit:      req.Unit,
		SellPrice: price(req.SellPrice),
		BuyPrice:  price(req.BuyPrice),
		Active:    activeOr(req.Active, current.Active),
	})
	if err != nil {
		return err
	}
	if err = s.h.EditProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteProduct handles POST /produkte/{productId}/loeschen/. Products that
// appear on any order cannot be deleted.
func (s *Server) DeleteProduct(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return err
	}
	if err = s.h.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) product(c echo.Context) (queries.ProductResponse, error) {
	productID, err := pathID(c, "productId")
	if err != nil {
		return queries.ProductResponse{}, err
	}
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return queries.ProductResponse{}, err
	}
	return s.h.Products.One(c.Request().Context(), query)
}
