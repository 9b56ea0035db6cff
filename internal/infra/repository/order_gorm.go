package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func orderPreloads(tx *gorm.DB, depth repo.ExpandDepth) *gorm.DB {
	if depth >= repo.ExpandChildren {
		tx = tx.Preload("OrderDetails").Preload("OrderDetails.Product")
	}
	return tx
}

// 注文一覧。名前の完全一致は顧客へのjoin、住所は部分一致。
func (r *OrderGormRepository) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, error) {
	tx := r.db.WithContext(ctx).Model(&model.Order{})

	if q.FirstName != "" || q.LastName != "" {
		tx = tx.Joins("JOIN customers ON customers.id = orders.customer_id")
		if q.FirstName != "" {
			tx = tx.Where("customers.first_name = ?", q.FirstName)
		}
		if q.LastName != "" {
			tx = tx.Where("customers.last_name = ?", q.LastName)
		}
	}
	if q.Address != "" {
		tx = tx.Where("orders.delivery_address LIKE ?", "%"+q.Address+"%")
	}

	tx = orderPreloads(tx, q.Expand).Order("orders.id asc")
	if !q.Page.Unbounded() {
		tx = tx.Offset(q.Page.Offset()).Limit(q.Page.Size)
	}

	var orders []model.Order
	if err := tx.Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id int64, depth repo.ExpandDepth) (model.Order, error) {
	var o model.Order
	tx := orderPreloads(r.db.WithContext(ctx), depth)
	err := tx.First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *OrderGormRepository) ListIDsByCustomerID(ctx context.Context, customerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("customer_id = ?", customerID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Create は顧客の存在を同一トランザクション内で明示的に確認してから挿入する。
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Customer{}).Where("id = ?", o.CustomerID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return repo.ErrForeignKey
		}

		o.OrderDetails = nil
		res := tx.Create(&o)
		if res.Error != nil {
			return translatePgError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNoRowsAffected
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Update(ctx context.Context, o model.Order) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND version = ?", o.ID, o.Version).
		Updates(map[string]interface{}{
			"customer_id":      o.CustomerID,
			"date_created":     o.DateCreated,
			"delivery_address": o.DeliveryAddress,
			"version":          o.Version + 1,
		})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		exists, err := r.Exists(ctx, o.ID)
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

func (r *OrderGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, id)
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	//0行でもエラーにしない（注文のない顧客は消せる）
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&model.Order{})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	return nil
}
