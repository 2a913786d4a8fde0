package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Lewis310/MyPortfolio/internal/apperrors"
	"github.com/Lewis310/MyPortfolio/internal/model"
	"github.com/Lewis310/MyPortfolio/internal/repository"
)

// HoldingService handles holding lifecycle operations. Holdings are
// user-authored and mutated only through explicit add/edit/delete requests.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
}

// NewHoldingService creates a new HoldingService.
func NewHoldingService(holdingRepo *repository.HoldingRepository) *HoldingService {
	return &HoldingService{holdingRepo: holdingRepo}
}

// GetAllHoldings returns all recorded holdings.
func (s *HoldingService) GetAllHoldings() ([]model.Holding, error) {
	holdings, err := s.holdingRepo.GetHoldings()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveHoldings, err)
	}
	return holdings, nil
}

// GetHolding returns a single holding by ID.
func (s *HoldingService) GetHolding(id string) (model.Holding, error) {
	return s.holdingRepo.GetHoldingOnID(id)
}

// CreateHolding records a new holding. Re-adding a symbol creates a
// distinct holding; there is no lot merging. The ID and added timestamp are
// assigned here.
func (s *HoldingService) CreateHolding(h model.Holding) (model.Holding, error) {
	if h.Units < 0 {
		return model.Holding{}, apperrors.ErrNegativeUnits
	}

	h.ID = uuid.New().String()
	h.AddedAt = time.Now().UTC()
	if err := s.holdingRepo.CreateHolding(h); err != nil {
		return model.Holding{}, err
	}
	return h, nil
}

// UpdateHolding applies an explicit edit to an existing holding.
func (s *HoldingService) UpdateHolding(h model.Holding) (model.Holding, error) {
	if h.Units < 0 {
		return model.Holding{}, apperrors.ErrNegativeUnits
	}

	existing, err := s.holdingRepo.GetHoldingOnID(h.ID)
	if err != nil {
		return model.Holding{}, err
	}

	h.AddedAt = existing.AddedAt
	if err := s.holdingRepo.UpdateHolding(h); err != nil {
		return model.Holding{}, err
	}
	return h, nil
}

// DeleteHolding removes a holding.
func (s *HoldingService) DeleteHolding(id string) error {
	return s.holdingRepo.DeleteHolding(id)
}
