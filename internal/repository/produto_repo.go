package repository

import (
	"context"

	"makarios/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for products and their
// bill-of-materials.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	// FindByID loads the product with its BOM lines preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	List(ctx context.Context) ([]model.Produto, error)
	// ReplaceBOM swaps the product's BOM lines atomically with the field
	// update — product edits replace the recipe, never patch it line by line.
	Update(ctx context.Context, p *model.Produto, novaBOM []model.MaterialProduto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Preload("Materiais").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) List(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Preload("Materiais").Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto, novaBOM []model.MaterialProduto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Produto{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"nome":                 p.Nome,
			"quantidade_planejada": p.QuantidadePlanejada,
		}).Error; err != nil {
			return err
		}
		if novaBOM == nil {
			return nil
		}
		if err := tx.Delete(&model.MaterialProduto{}, "produto_id = ?", p.ID).Error; err != nil {
			return err
		}
		for i := range novaBOM {
			novaBOM[i].ProdutoID = p.ID
		}
		if len(novaBOM) == 0 {
			return nil
		}
		return tx.Create(&novaBOM).Error
	})
}

func (r *produtoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.MaterialProduto{}, "produto_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Produto{}, "id = ?", id).Error
	})
}
