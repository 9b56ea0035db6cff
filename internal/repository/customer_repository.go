package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

// 一覧検索。完全一致と前置一致は両方指定されたらANDで絞る。
type CustomerListQuery struct {
	FirstName       string
	LastName        string
	FirstNamePrefix string
	LastNamePrefix  string
	Expand          ExpandDepth
	Page            PageSpec
}

type CustomerRepository interface {
	List(ctx context.Context, q CustomerListQuery) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64, depth ExpandDepth) (model.Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)

	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, id int64) error
}
