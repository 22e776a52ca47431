package repository

import (
	"context"

	"makarios/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaterialRepository defines the data access contract for the material
// catalog. Services depend on this interface, not on the concrete GORM
// implementation, enabling unit testing via in-memory stubs.
type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	List(ctx context.Context) ([]model.Material, error)
	ListAbaixoDoMinimo(ctx context.Context) ([]model.Material, error)
	Update(ctx context.Context, m *model.Material) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	// delta is applied in the material's purchase unit; negative = consumption.
	UpdateEstoqueTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepo) List(ctx context.Context) ([]model.Material, error) {
	var materiais []model.Material
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&materiais).Error
	return materiais, err
}

func (r *materialRepo) ListAbaixoDoMinimo(ctx context.Context) ([]model.Material, error) {
	var materiais []model.Material
	err := r.db.WithContext(ctx).
		Where("estoque_minimo > 0 AND estoque_atual < estoque_minimo").
		Order("nome ASC").
		Find(&materiais).Error
	return materiais, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Material{}, "id = ?", id).Error
}

func (r *materialRepo) UpdateEstoqueTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	return tx.Model(&model.Material{}).Where("id = ?", id).
		Update("estoque_atual", gorm.Expr("estoque_atual + ?", delta)).Error
}

func (r *materialRepo) DB() *gorm.DB { return r.db }
