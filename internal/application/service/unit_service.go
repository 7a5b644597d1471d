package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sskhi1/pos-system/internal/domain/entity"
	"github.com/sskhi1/pos-system/internal/domain/repository"
	"github.com/sskhi1/pos-system/pkg/apperror"
)

// UnitService handles unit-related operations
type UnitService struct {
	unitRepo repository.UnitRepository
}

// NewUnitService creates a new unit service
func NewUnitService(unitRepo repository.UnitRepository) *UnitService {
	return &UnitService{unitRepo: unitRepo}
}

// CreateUnitInput represents the create unit input
type CreateUnitInput struct {
	Name string
}

// CreateUnit creates a new unit of measure with a unique name
func (s *UnitService) CreateUnit(ctx context.Context, input *CreateUnitInput) (*entity.Unit, error) {
	existing, err := s.unitRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewExistsError("Unit", "name", input.Name)
	}

	unit := &entity.Unit{Name: input.Name}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// GetUnit retrieves a unit by ID
func (s *UnitService) GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, apperror.NewDoesNotExistError("Unit", id)
	}
	return unit, nil
}

// ListUnits returns all units of measure
func (s *UnitService) ListUnits(ctx context.Context) ([]entity.Unit, error) {
	return s.unitRepo.GetAll(ctx)
}
