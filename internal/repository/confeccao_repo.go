package repository

import (
	"context"

	"makarios/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConfeccaoFilter defines filters for listing production history.
type ConfeccaoFilter struct {
	ProdutoID *uuid.UUID
	Page      int
	Limit     int
}

// ConfeccaoRepository is the append-only store for production records.
// Records are never updated: only created inside the confection transaction
// and individually deleted by the user.
type ConfeccaoRepository interface {
	CreateTx(tx *gorm.DB, c *model.Confeccao) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Confeccao, error)
	// List returns records newest first.
	List(ctx context.Context, filter ConfeccaoFilter) ([]model.Confeccao, int64, error)
	// Resumo returns the record count and the sum of all snapshot costs.
	Resumo(ctx context.Context) (int64, decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type confeccaoRepo struct{ db *gorm.DB }

func NewConfeccaoRepository(db *gorm.DB) ConfeccaoRepository { return &confeccaoRepo{db: db} }

func (r *confeccaoRepo) CreateTx(tx *gorm.DB, c *model.Confeccao) error {
	return tx.Create(c).Error
}

func (r *confeccaoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Confeccao, error) {
	var c model.Confeccao
	err := r.db.WithContext(ctx).Preload("Itens").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *confeccaoRepo) List(ctx context.Context, filter ConfeccaoFilter) ([]model.Confeccao, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Confeccao{})
	if filter.ProdutoID != nil {
		q = q.Where("produto_id = ?", *filter.ProdutoID)
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
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	var confeccoes []model.Confeccao
	err := q.Preload("Itens").Order("created_at DESC").Offset(offset).Limit(limit).Find(&confeccoes).Error
	return confeccoes, total, err
}

func (r *confeccaoRepo) Resumo(ctx context.Context) (int64, decimal.Decimal, error) {
	var resumo struct {
		Total int64
		Soma  decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Confeccao{}).
		Select("COUNT(*) AS total, COALESCE(SUM(custo_total), 0) AS soma").
		Scan(&resumo).Error
	return resumo.Total, resumo.Soma, err
}

func (r *confeccaoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ConfeccaoMaterial{}, "confeccao_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Confeccao{}, "id = ?", id).Error
	})
}
