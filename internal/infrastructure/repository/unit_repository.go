package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sskhi1/pos-system/internal/domain/entity"
	domainRepo "github.com/sskhi1/pos-system/internal/domain/repository"
	"gorm.io/gorm"
)

type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) domainRepo.UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *unitRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	var unit entity.Unit
	err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) GetByName(ctx context.Context, name string) (*entity.Unit, error) {
	var unit entity.Unit
	err := r.db.WithContext(ctx).First(&unit, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) GetAll(ctx context.Context) ([]entity.Unit, error) {
	var units []entity.Unit
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&units).Error
	return units, err
}
