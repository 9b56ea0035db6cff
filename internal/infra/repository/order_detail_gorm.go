package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

type OrderDetailGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderDetailGormRepository(db *gorm.DB) *OrderDetailGormRepository {
	return &OrderDetailGormRepository{db: db}
}

func (r *OrderDetailGormRepository) List(ctx context.Context, page repo.PageSpec) ([]model.OrderDetail, error) {
	tx := r.db.WithContext(ctx).Model(&model.OrderDetail{}).Order("id asc")
	if !page.Unbounded() {
		tx = tx.Offset(page.Offset()).Limit(page.Size)
	}

	var details []model.OrderDetail
	if err := tx.Find(&details).Error; err != nil {
		return []model.OrderDetail{}, err
	}
	return details, nil
}

func (r *OrderDetailGormRepository) FindByID(ctx context.Context, id int64) (model.OrderDetail, error) {
	var d model.OrderDetail
	err := r.db.WithContext(ctx).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderDetail{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderDetail{}, err
	}
	return d, nil
}

// Create は注文と商品の存在を同一トランザクション内で明示的に確認してから挿入する。
func (r *OrderDetailGormRepository) Create(ctx context.Context, d model.OrderDetail) (model.OrderDetail, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Order{}).Where("id = ?", d.OrderID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return repo.ErrForeignKey
		}
		if err := tx.Model(&model.Product{}).Where("id = ?", d.ProductID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return repo.ErrForeignKey
		}

		d.Product = nil
		res := tx.Create(&d)
		if res.Error != nil {
			return translatePgError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNoRowsAffected
		}
		return nil
	})
	if err != nil {
		return model.OrderDetail{}, err
	}
	return d, nil
}

func (r *OrderDetailGormRepository) Update(ctx context.Context, d model.OrderDetail) error {
	res := r.db.WithContext(ctx).Model(&model.OrderDetail{}).
		Where("id = ? AND version = ?", d.ID, d.Version).
		Updates(map[string]interface{}{
			"order_id":   d.OrderID,
			"product_id": d.ProductID,
			"quantity":   d.Quantity,
			"version":    d.Version + 1,
		})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(&model.OrderDetail{}).Where("id = ?", d.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return repo.ErrNotFound
		}
		return repo.ErrConflict
	}
	return nil
}

func (r *OrderDetailGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.OrderDetail{}, id)
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderDetailGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	res := r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&model.OrderDetail{})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	return nil
}

func (r *OrderDetailGormRepository) DeleteByOrderIDs(ctx context.Context, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		//空集合への削除はno-op
		return nil
	}
	res := r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Delete(&model.OrderDetail{})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	return nil
}

func (r *OrderDetailGormRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.OrderDetail{})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	return nil
}
