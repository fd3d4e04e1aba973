package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"inventory-service/internal/model"
	"inventory-service/prometheus"
)

// ProductRepository is the storage contract for products. FindByQrCode returns
// nil, nil when no product matches. Save inserts the product together with its
// attribute rows. Transaction runs fn against a repository bound to one unit
// of work; any error from fn rolls the whole unit back.
type ProductRepository interface {
	FindByQrCode(ctx context.Context, qrCodeID string) (*model.Product, error)
	Save(ctx context.Context, product *model.Product) error
	Transaction(ctx context.Context, fn func(repo ProductRepository) error) error
}

// GormProductRepository implements ProductRepository on a gorm connection.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindByQrCode(ctx context.Context, qrCodeID string) (*model.Product, error) {
	defer prometheus.TrackDBOperation("find_by_qr_code")(time.Now())

	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Attributes").
		Where("qr_code_id = ?", qrCodeID).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) Save(ctx context.Context, product *model.Product) error {
	defer prometheus.TrackDBOperation("save_product")(time.Now())

	// Create cascades the attribute rows through the association.
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Transaction(ctx context.Context, fn func(repo ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormProductRepository{db: tx})
	})
}
