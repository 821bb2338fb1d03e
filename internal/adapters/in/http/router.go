package http

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds what the router needs besides the server itself.
type RouterConfig struct {
	AuthUser     string
	AuthPassword string
	Logger       *slog.Logger
}

func isPublic(path string) bool {
	return path == "/health" || path == "/openapi.yaml" || strings.HasPrefix(path, "/swagger/")
}

// NewRouter builds the echo instance: recovery, request logging, basic auth,
// request validation against the embedded OpenAPI document and all routes.
// Basic auth is skipped when no user is configured.
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validation, err := requestValidation(doc)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	if cfg.AuthUser != "" {
		e.Use(middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
			Skipper: func(c echo.Context) bool {
				return isPublic(c.Request().URL.Path)
			},
			Validator: func(user, password string, _ echo.Context) (bool, error) {
				userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AuthUser)) == 1
				passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AuthPassword)) == 1
				return userOK && passwordOK, nil
			},
			Realm: "meatmanager",
		}))
	} else {
		logger.WarnContext(context.Background(), "AUTH_USER is empty, basic auth is disabled")
	}

	e.Use(validation)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", serveOpenAPI)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.register(e)
	return e, nil
}

func (s *Server) register(e *echo.Echo) {
	e.GET("/", s.GetActiveRound)

	e.GET("/runden/", s.GetRounds)
	e.GET("/runden/neu/", s.GetRoundForm)
	e.POST("/runden/neu/", s.CreateRound)
	e.POST("/runden/:roundId/aktiv/", s.ActivateRound)
	e.GET("/runden/:roundId/einkaufsliste/", s.GetShoppingList)
	e.GET("/runden/:roundId/packliste/", s.GetPackList)
	e.GET("/runden/:roundId/gewinn/", s.GetProfit)
	e.GET("/runden/:roundId/dashboard/", s.GetDashboard)
	e.GET("/runden/:roundId/neu/", s.GetOrderForm)
	e.POST("/runden/:roundId/neu/", s.CreateOrder)
	e.POST("/runden/:roundId/alle-bezahlt/", s.MarkRoundOrdersPaid)
	e.POST("/runden/:roundId/alle-abgeholt/", s.MarkRoundOrdersPickedUp)

	e.GET("/order/:orderId/bearbeiten/", s.GetOrder)
	e.POST("/order/:orderId/bearbeiten/", s.EditOrder)
	e.POST("/order/:orderId/loeschen/", s.DeleteOrder)
	e.POST("/order/:orderId/paid/", s.MarkOrderPaid)
	e.POST("/order/:orderId/picked/", s.MarkOrderPickedUp)

	e.GET("/kunden/", s.GetCustomers)
	e.POST("/kunden/neu/", s.CreateCustomer)
	e.GET("/kunden/:customerId/bearbeiten/", s.GetCustomer)
	e.POST("/kunden/:customerId/bearbeiten/", s.EditCustomer)

	e.GET("/produkte/", s.GetProducts)
	e.POST("/produkte/neu/", s.CreateProduct)
	e.GET("/produkte/:productId/bearbeiten/", s.GetProduct)
	e.POST("/produkte/:productId/bearbeiten/", s.EditProduct)
	e.POST("/produkte/:productId/loeschen/", s.DeleteProduct)
}
