package repository

import (
	"context"

	"makarios/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovimentoEstoqueFilter defines filters for listing stock movements.
type MovimentoEstoqueFilter struct {
	MaterialID *uuid.UUID
	Tipo       string
	Page       int
	Limit      int
}

type MovimentoEstoqueRepository interface {
	Create(ctx context.Context, m *model.MovimentoEstoque) error
	CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error
	List(ctx context.Context, filter MovimentoEstoqueFilter) ([]model.MovimentoEstoque, int64, error)
}

type movimentoEstoqueRepo struct{ db *gorm.DB }

func NewMovimentoEstoqueRepository(db *gorm.DB) MovimentoEstoqueRepository {
	return &movimentoEstoqueRepo{db: db}
}

func (r *movimentoEstoqueRepo) Create(ctx context.Context, m *model.MovimentoEstoque) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimentoEstoqueRepo) CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentoEstoqueRepo) List(ctx context.Context, filter MovimentoEstoqueFilter) ([]model.MovimentoEstoque, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimentoEstoque{})
	if filter.MaterialID != nil {
		q = q.Where("material_id = ?", *filter.MaterialID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	offset := (page - 1) * limit

	var movimentos []model.MovimentoEstoque
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&movimentos).Error
	return movimentos, total, err
}
