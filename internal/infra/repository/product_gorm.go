package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品一覧。ラベル部分一致と価格帯（下限/上限）、ページング付き。
// LIKEは大文字小文字を区別する（ILIKEではない）。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if q.Label != "" {
		tx = tx.Where("label LIKE ?", "%"+q.Label+"%")
	}
	if q.LPrice != nil {
		tx = tx.Where("price >= ?", *q.LPrice)
	}
	if q.GPrice != nil {
		tx = tx.Where("price <= ?", *q.GPrice)
	}

	tx = tx.Order("id asc")
	if !q.Page.Unbounded() {
		tx = tx.Offset(q.Page.Offset()).Limit(q.Page.Size)
	}

	var products []model.Product
	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	res := r.db.WithContext(ctx).Create(&p)
	if res.Error != nil {
		return model.Product{}, translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Product{}, repo.ErrNoRowsAffected
	}
	return p, nil
}

// Update はversion一致を条件にした楽観ロック付き更新。
// 0行なら行が消えたのかversionがずれたのかを区別して返す。
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND version = ?", p.ID, p.Version).
		Updates(map[string]interface{}{
			"label":     p.Label,
			"price":     p.Price,
			"available": p.Available,
			"image_uri": p.ImageURI,
			"version":   p.Version + 1,
		})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		exists, err := r.Exists(ctx, p.ID)
		if err != nil {
			return err
		}
		if !exists {
			return repo.ErrNotFound
		}
		return repo.ErrConflict
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
