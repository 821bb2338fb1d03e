package http

import (
	"net/http"
	"time"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/core/application/usecases/queries"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetActiveRound handles GET / - the active round or null.
func (s *Server) GetActiveRound(c echo.Context) error {
	active, err := s.h.Rounds.Active(c.Request().Context())
	if err != nil {
		return err
	}
	if active == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, toRound(*active))
}

// GetRounds handles GET /runden/ - all rounds, active first.
func (s *Server) GetRounds(c echo.Context) error {
	rounds, err := s.h.Rounds.Handle(c.Request().Context(), queries.NewGetRoundsQuery(false))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRounds(rounds))
}

// GetRoundForm handles GET /runden/neu/ - defaults for a new round.
func (s *Server) GetRoundForm(c echo.Context) error {
	return c.JSON(http.StatusOK, RoundForm{
		Date:     time.Now().Format(time.DateOnly),
		TravelKm: "0",
	})
}

// CreateRound handles POST /runden/neu/ - creates a round and makes it active.
func (s *Server) CreateRound(c echo.Context) error {
	var req RoundRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, req.Date, time.Local)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("date", err)
		}
		date = parsed
	}

	roundID := kernel.NewUUID()
	cmd, err := commands.NewCreateRoundCommand(roundID, date, kernel.ParseDecimalOrZero(req.TravelKm))
	if err != nil {
		return err
	}
	if err = s.h.CreateRound.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: roundID.String()})
}

// ActivateRound handles POST /runden/{roundId}/aktiv/.
func (s *Server) ActivateRound(c echo.Context) error {
	roundID, err := pathID(c, "roundId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewActivateRoundCommand(roundID)
	if err != nil {
		return err
	}
	if err = s.h.ActivateRound.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) roundQuery(c echo.Context) (queries.RoundQuery, error) {
	roundID, err := pathID(c, "roundId")
	if err != nil {
		return queries.RoundQuery{}, err
	}
	return queries.NewRoundQuery(roundID)
}

// GetShoppingList handles GET /runden/{roundId}/einkaufsliste/.
func (s *Server) GetShoppingList(c echo.Context) error {
	query, err := s.roundQuery(c)
	if err != nil {
		return err
	}

	lines, err := s.h.ShoppingList.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShoppingList(lines))
}

// GetPackList handles GET /runden/{roundId}/packliste/.
func (s *Server) GetPackList(c echo.Context) error {
	query, err := s.roundQuery(c)
	if err != nil {
		return err
	}

	orders, err := s.h.PackList.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPackList(orders))
}

// GetProfit handles GET /runden/{roundId}/gewinn/.
func (s *Server) GetProfit(c echo.Context) error {
	query, err := s.roundQuery(c)
	if err != nil {
		return err
	}

	profit, err := s.h.Profit.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfit(profit))
}

// GetDashboard handles GET /runden/{roundId}/dashboard/.
func (s *Server) GetDashboard(c echo.Context) error {
	query, err := s.roundQuery(c)
	if err != nil {
		return err
	}

	dashboard, err := s.h.Dashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboard(dashboard))
}

// MarkRoundOrdersPaid handles POST /runden/{roundId}/alle-bezahlt/.
func (s *Server) MarkRoundOrdersPaid(c echo.Context) error {
	return s.markRoundOrders(c, commands.FlagPaid)
}

// MarkRoundOrdersPickedUp handles POST /runden/{roundId}/alle-abgeholt/.
func (s *Server) MarkRoundOrdersPickedUp(c echo.Context) error {
	return s.markRoundOrders(c, commands.FlagPickedUp)
}

func (s *Server) markRoundOrders(c echo.Context, flag commands.OrderFlag) error {
	roundID, err := pathID(c, "roundId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkRoundOrdersCommand(roundID, flag)
	if err != nil {
		return err
	}
	if err = s.h.MarkRoundOrders.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
