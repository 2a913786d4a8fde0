package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/apperrors"
	"github.com/Lewis310/MyPortfolio/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// Each row is one recorded lot; re-adding a symbol inserts a new row rather
// than merging with an existing one.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldings retrieves all holdings ordered by the time they were added.
// Returns an empty slice when no holdings exist.
func (r *HoldingRepository) GetHoldings() ([]model.Holding, error) {
	query := `
          SELECT id, symbol, display_name, units, purchase_price, purchase_date, notes, added_at
          FROM holding
          ORDER BY added_at ASC, id ASC
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldingOnID retrieves a single holding by its ID.
func (r *HoldingRepository) GetHoldingOnID(id string) (model.Holding, error) {
	query := `
          SELECT id, symbol, display_name, units, purchase_price, purchase_date, notes, added_at
          FROM holding
          WHERE id = ?
      `

	row := r.db.QueryRow(query, id)
	h, err := scanHolding(row)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, err
	}

	return h, nil
}

// CreateHolding inserts a new holding row.
func (r *HoldingRepository) CreateHolding(h model.Holding) error {
	query := `
          INSERT INTO holding (id, symbol, display_name, units, purchase_price, purchase_date, notes, added_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.Exec(query,
		h.ID,
		h.Symbol,
		h.DisplayName,
		h.Units,
		h.PurchasePrice,
		h.PurchaseDate.Format("2006-01-02"),
		h.Notes,
		h.AddedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

// UpdateHolding replaces the user-editable fields of an existing holding.
func (r *HoldingRepository) UpdateHolding(h model.Holding) error {
	query := `
          UPDATE holding
          SET symbol = ?, display_name = ?, units = ?, purchase_price = ?, purchase_date = ?, notes = ?
          WHERE id = ?
      `

	result, err := r.db.Exec(query,
		h.Symbol,
		h.DisplayName,
		h.Units,
		h.PurchasePrice,
		h.PurchaseDate.Format("2006-01-02"),
		h.Notes,
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// DeleteHolding removes a holding by its ID.
func (r *HoldingRepository) DeleteHolding(id string) error {
	result, err := r.db.Exec("DELETE FROM holding WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanHolding(s scanner) (model.Holding, error) {
	var h model.Holding
	var purchaseDateStr, addedAtStr string

	err := s.Scan(
		&h.ID,
		&h.Symbol,
		&h.DisplayName,
		&h.Units,
		&h.PurchasePrice,
		&purchaseDateStr,
		&h.Notes,
		&addedAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Holding{}, err
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to scan holding table results: %w", err)
	}

	h.PurchaseDate, err = ParseTime(purchaseDateStr)
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to parse purchase date: %w", err)
	}
	h.AddedAt, err = ParseTime(addedAtStr)
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to parse added timestamp: %w", err)
	}

	return h, nil
}
