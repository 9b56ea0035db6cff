package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"warehouse/internal/domain/model"
)

// 一覧検索
type ProductListQuery struct {
	Label  string
	LPrice *decimal.Decimal
	GPrice *decimal.Decimal
	Page   PageSpec
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// Update はversion一致を条件にした楽観ロック付き更新。
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}
