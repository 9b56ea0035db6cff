package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64, depth repo.ExpandDepth) (model.Customer, error) {
	args := m.Called(ctx, id, depth)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64, depth repo.ExpandDepth) (model.Order, error) {
	args := m.Called(ctx, id, depth)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) ListIDsByCustomerID(ctx context.Context, customerID int64) ([]int64, error) {
	args := m.Called(ctx, customerID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderRepoMock) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type OrderDetailRepoMock struct{ mock.Mock }

func (m *OrderDetailRepoMock) List(ctx context.Context, page repo.PageSpec) ([]model.OrderDetail, error) {
	args := m.Called(ctx, page)
	items, _ := args.Get(0).([]model.OrderDetail)
	return items, args.Error(1)
}

func (m *OrderDetailRepoMock) FindByID(ctx context.Context, id int64) (model.OrderDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(model.OrderDetail)
	return d, args.Error(1)
}

func (m *OrderDetailRepoMock) Create(ctx context.Context, d model.OrderDetail) (model.OrderDetail, error) {
	args := m.Called(ctx, d)
	created, _ := args.Get(0).(model.OrderDetail)
	return created, args.Error(1)
}

func (m *OrderDetailRepoMock) Update(ctx context.Context, d model.OrderDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *OrderDetailRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderDetailRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderDetailRepoMock) DeleteByOrderIDs(ctx context.Context, orderIDs []int64) error {
	args := m.Called(ctx, orderIDs)
	return args.Error(0)
}

func (m *OrderDetailRepoMock) DeleteByProductID(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// =====================
// Fake transaction manager（そのまま関数を実行するだけ）
// =====================

type txReposStub struct {
	products     repo.ProductRepository
	customers    repo.CustomerRepository
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailRepository
}

func (s *txReposStub) Products() repo.ProductRepository         { return s.products }
func (s *txReposStub) Customers() repo.CustomerRepository       { return s.customers }
func (s *txReposStub) Orders() repo.OrderRepository             { return s.orders }
func (s *txReposStub) OrderDetails() repo.OrderDetailRepository { return s.orderDetails }

type fakeTxManager struct{ repos txReposStub }

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(&f.repos)
}
