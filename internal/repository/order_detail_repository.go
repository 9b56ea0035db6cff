package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

type OrderDetailRepository interface {
	List(ctx context.Context, page PageSpec) ([]model.OrderDetail, error)
	FindByID(ctx context.Context, id int64) (model.OrderDetail, error)

	Create(ctx context.Context, d model.OrderDetail) (model.OrderDetail, error)
	Update(ctx context.Context, d model.OrderDetail) error
	Delete(ctx context.Context, id int64) error

	// カスケード削除用（ストレージ層で明示的に行う）
	DeleteByOrderID(ctx context.Context, orderID int64) error
	DeleteByOrderIDs(ctx context.Context, orderIDs []int64) error
	DeleteByProductID(ctx context.Context, productID int64) error
}
