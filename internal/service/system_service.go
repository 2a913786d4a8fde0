package service

import (
	"database/sql"

	"github.com/Lewis310/MyPortfolio/internal/database"
	"github.com/Lewis310/MyPortfolio/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db         *sql.DB
	dataSource string
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, dataSource string) *SystemService {
	return &SystemService{
		db:         db,
		dataSource: dataSource,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// Version returns the application version
func (s *SystemService) Version() string {
	return version.Version
}

// DataSource returns the configured data source mode ("live" or "demo")
func (s *SystemService) DataSource() string {
	return s.dataSource
}
