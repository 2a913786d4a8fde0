package testutil

import (
	"database/sql"
	"testing"

	"github.com/Lewis310/MyPortfolio/internal/marketdata"
	"github.com/Lewis310/MyPortfolio/internal/repository"
	"github.com/Lewis310/MyPortfolio/internal/service"
)

func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()

	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewHoldingService(holdingRepo)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB, provider marketdata.Provider) *service.PortfolioService {
	t.Helper()

	holdingService := NewTestHoldingService(t, db)

	return service.NewPortfolioService(holdingService, provider)
}
