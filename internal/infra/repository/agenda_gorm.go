package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/avantivendas/visitas-api/internal/domain/agenda"
	"github.com/avantivendas/visitas-api/internal/models"
)

type AgendaGormRepository struct {
	db *gorm.DB
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

// Create insere o agendamento; o id é atribuído pelo banco, de forma
// atômica, na própria inserção.
func (r *AgendaGormRepository) Create(
	ctx context.Context,
	ag *models.Agendamento,
) error {

	if err := r.db.WithContext(ctx).Create(ag).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// --------------------------------------------------
// List
// --------------------------------------------------

func (r *AgendaGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Agendamento, error) {

	q := r.db.WithContext(ctx).Model(&models.Agendamento{})

	if filter.Owner != domain.OwnerAll {
		q = q.Where("usuario = ?", filter.Owner)
	}

	if filter.Data != "" {
		q = q.Where("data = ?", filter.Data)
	}

	var out []models.Agendamento
	if err := q.Order("id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return out, nil
}
