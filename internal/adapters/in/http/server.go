package http

import (
	"log/slog"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/application/usecases/queries"
)

// Handlers bundles the use cases the HTTP server dispatches to.
type Handlers struct {
	// Command handlers
	CreateRound     commands.CreateRoundCommandHandler
	ActivateRound   commands.ActivateRoundCommandHandler
	CreateOrder     commands.CreateOrderCommandHandler
	EditOrder       commands.EditOrderCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler
	MarkOrder       commands.MarkOrderCommandHandler
	MarkRoundOrders commands.MarkRoundOrdersCommandHandler
	CreateCustomer  commands.CreateCustomerCommandHandler
	EditCustomer    commands.EditCustomerCommandHandler
	CreateProduct   commands.CreateProductCommandHandler
	EditProduct     commands.EditProductCommandHandler
	DeleteProduct   commands.DeleteProductCommandHandler

	// Query handlers
	Rounds       queries.GetRoundsQueryHandler
	ShoppingList queries.GetShoppingListQueryHandler
	PackList     queries.GetPackListQueryHandler
	Profit       queries.GetRoundProfitQueryHandler
	Dashboard    queries.GetRoundDashboardQueryHandler
	Order        queries.GetOrderQueryHandler
	OrderForm    queries.GetOrderFormQueryHandler
	Customers    queries.GetCustomersQueryHandler
	Products     queries.GetProductsQueryHandler
}

// Server translates HTTP requests into commands and queries and renders their
// results as JSON. Errors are returned to echo and rendered by errorHandler.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}
