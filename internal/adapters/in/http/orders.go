package http

import (
	"net/http"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/application/usecases/queries"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// quantities parses the entered amounts. Blank or unreadable amounts count as
// zero; a key that is not a product id is rejected.
func quantities(raw map[string]string) (commands.Quantities, error) {
	out := make(commands.Quantities, len(raw))
	for key, value := range raw {
		productID, err := kernel.UUIDFromString(key)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("quantities", err)
		}
		out[productID] = kernel.ParseQuantity(value)
	}
	return out, nil
}

// GetOrderForm handles GET /runden/{roundId}/neu/ - what the quick-entry form offers.
func (s *Server) GetOrderForm(c echo.Context) error {
	query, err := s.roundQuery(c)
	if err != nil {
		return err
	}

	form, err := s.h.OrderForm.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, OrderForm{
		Round:     toRound(form.Round),
		Customers: toCustomers(form.Customers),
		Products:  toProducts(form.Products),
		Sources:   sources,
	})
}

// CreateOrder handles POST /runden/{roundId}/neu/.
func (s *Server) CreateOrder(c echo.Context) error {
	roundID, err := pathID(c, "roundId")
	if err != nil {
		return err
	}

	var req OrderRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}

	customerID, err := bodyID("customer_id", req.CustomerID)
	if err != nil {
		return err
	}
	entered, err := quantities(req.Quantities)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, roundID, customerID, req.Source, req.Comment, entered)
	if err != nil {
		return err
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /order/{orderId}/bearbeiten/ - the order with the full
// catalogue, inactive products included.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}
	o, err := s.h.Order.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	products, err := s.h.Products.Handle(c.Request().Context(), queries.NewGetProductsQuery("", false))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, OrderEditForm{
		Order:    toOrder(o),
		Products: toProducts(products),
		Sources:  sources,
	})
}

// EditOrder handles POST /order/{orderId}/bearbeiten/. An edit that leaves no
// items deletes the order and says so in the response.
func (s *Server) EditOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}

	var req OrderRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}

	entered, err := quantities(req.Quantities)
	if err != nil {
		return err
	}

	cmd, err := commands.NewEditOrderCommand(orderID, req.Source, req.Comment, entered)
	if err != nil {
		return err
	}
	result, err := s.h.EditOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if result.OrderDeleted {
		s.logger.InfoContext(c.Request().Context(), "Order deleted by edit", "order_id", orderID.String())
	}

	return c.JSON(http.StatusOK, EditOrderResponse{ID: orderID.String(), OrderDeleted: result.OrderDeleted})
}

// DeleteOrder handles POST /order/{orderId}/loeschen/.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /order/{orderId}/paid/.
func (s *Server) MarkOrderPaid(c echo.Context) error {
	return s.markOrder(c, commands.FlagPaid)
}

// MarkOrderPickedUp handles POST /order/{orderId}/picked/.
func (s *Server) MarkOrderPickedUp(c echo.Context) error {
	return s.markOrder(c, commands.FlagPickedUp)
}

func (s *Server) markOrder(c echo.Context, flag commands.OrderFlag) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderCommand(orderID, flag)
	if err != nil {
		return err
	}
	if err = s.h.MarkOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
