package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// TopUpRequest is the body of POST /api/v1/credits/topup.
type TopUpRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// creditBalanceHandler handles GET /api/v1/credits/balance.
func (s *Server) creditBalanceHandler(c *echo.Context) error {
	teamID := teamContext(c).TeamID
	balance, err := s.svc.Credits.Balance(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &BalanceResponse{TeamID: teamID, Balance: balance})
}

// creditLedgerHandler handles GET /api/v1/credits/ledger.
func (s *Server) creditLedgerHandler(c *echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return err
	}

	txns, err := s.svc.Credits.ListTransactions(c.Request().Context(), teamContext(c).TeamID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, txns)
}

// creditTopUpHandler handles POST /api/v1/credits/topup.
func (s *Server) creditTopUpHandler(c *echo.Context) error {
	var req TopUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	teamID := teamContext(c).TeamID
	if err := s.svc.Credits.TopUp(c.Request().Context(), teamID, req.Amount, req.Reason); err != nil {
		return mapServiceError(err)
	}

	balance, err := s.svc.Credits.Balance(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &BalanceResponse{TeamID: teamID, Balance: balance})
}
