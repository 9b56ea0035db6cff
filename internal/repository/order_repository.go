package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

// 一覧検索。名前は顧客へのjoinで絞る。
type OrderListQuery struct {
	FirstName string
	LastName  string
	Address   string
	Expand    ExpandDepth
	Page      PageSpec
}

type OrderRepository interface {
	List(ctx context.Context, q OrderListQuery) ([]model.Order, error)
	FindByID(ctx context.Context, id int64, depth ExpandDepth) (model.Order, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListIDsByCustomerID(ctx context.Context, customerID int64) ([]int64, error)

	Create(ctx context.Context, o model.Order) (model.Order, error)
	Update(ctx context.Context, o model.Order) error
	Delete(ctx context.Context, id int64) error
	DeleteByCustomerID(ctx context.Context, customerID int64) error
}
