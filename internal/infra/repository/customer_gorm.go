package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// customerPreloads は展開の深さをPreloadに写す。クエリ発行前に確定させる。
func customerPreloads(tx *gorm.DB, depth repo.ExpandDepth) *gorm.DB {
	switch depth {
	case repo.ExpandChildren:
		tx = tx.Preload("Orders")
	case repo.ExpandGrandchildren:
		tx = tx.Preload("Orders").
			Preload("Orders.OrderDetails").
			Preload("Orders.OrderDetails.Product")
	}
	return tx
}

// 顧客一覧。完全一致と前置一致を順に適用するのでANDで狭まる。
func (r *CustomerGormRepository) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, error) {
	tx := r.db.WithContext(ctx).Model(&model.Customer{})

	if q.FirstName != "" {
		tx = tx.Where("first_name = ?", q.FirstName)
	}
	if q.LastName != "" {
		tx = tx.Where("last_name = ?", q.LastName)
	}
	if q.FirstNamePrefix != "" {
		tx = tx.Where("first_name LIKE ?", q.FirstNamePrefix+"%")
	}
	if q.LastNamePrefix != "" {
		tx = tx.Where("last_name LIKE ?", q.LastNamePrefix+"%")
	}

	tx = customerPreloads(tx, q.Expand).Order("id asc")
	if !q.Page.Unbounded() {
		tx = tx.Offset(q.Page.Offset()).Limit(q.Page.Size)
	}

	var customers []model.Customer
	if err := tx.Find(&customers).Error; err != nil {
		return []model.Customer{}, err
	}
	return customers, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64, depth repo.ExpandDepth) (model.Customer, error) {
	var c model.Customer
	tx := customerPreloads(r.db.WithContext(ctx), depth)
	err := tx.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CustomerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	c.Orders = nil
	res := r.db.WithContext(ctx).Create(&c)
	if res.Error != nil {
		return model.Customer{}, translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Customer{}, repo.ErrNoRowsAffected
	}
	return c, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ? AND version = ?", c.ID, c.Version).
		Updates(map[string]interface{}{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"version":    c.Version + 1,
		})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		exists, err := r.Exists(ctx, c.ID)
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

func (r *CustomerGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
