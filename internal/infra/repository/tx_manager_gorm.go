package repository

import (
	"context"

	"gorm.io/gorm"

	repo "warehouse/internal/repository"
)

type txReposGorm struct {
	products     repo.ProductRepository
	customers    repo.CustomerRepository
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailRepository
}

func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }
func (r *txReposGorm) Customers() repo.CustomerRepository       { return r.customers }
func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) OrderDetails() repo.OrderDetailRepository { return r.orderDetails }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:     NewProductGormRepository(tx),
			customers:    NewCustomerGormRepository(tx),
			orders:       NewOrderGormRepository(tx),
			orderDetails: NewOrderDetailGormRepository(tx),
		}
		return fn(r)
	})
}
