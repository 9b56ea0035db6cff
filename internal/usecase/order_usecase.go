package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"warehouse/internal/mapper"
	repo "warehouse/internal/repository"
)

type OrderUsecase struct {
	orders  repo.OrderRepository
	tx      repo.TransactionManager
	mappers *mapper.Registry
	log     *zap.Logger
}

// DI
func NewOrderUsecase(
	orders repo.OrderRepository,
	tx repo.TransactionManager,
	mappers *mapper.Registry,
	log *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{orders: orders, tx: tx, mappers: mappers, log: log}
}

// GET /api/Ordersの入力DTO
type ListOrdersInput struct {
	FirstName        string
	LastName         string
	Address          string
	WithOrderDetails bool
	PageSize         *int
	PageNum          *int
}

func (u *OrderUsecase) List(ctx context.Context, in ListOrdersInput) ([]mapper.OrderResource, error) {
	page, err := validatePage(in.PageSize, in.PageNum)
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.List(ctx, repo.OrderListQuery{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		Expand:    repo.ResolveExpand(in.WithOrderDetails, false),
		Page:      page,
	})
	if err != nil {
		return nil, storeError(u.log, "list orders", err)
	}
	return u.mappers.OrdersToResources(orders), nil
}

func (u *OrderUsecase) Get(ctx context.Context, id int64, withOrderDetails bool) (mapper.OrderResource, error) {
	if id <= 0 {
		return mapper.OrderResource{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, id, repo.ResolveExpand(withOrderDetails, false))
	if err != nil {
		return mapper.OrderResource{}, storeError(u.log, "get order", err)
	}
	return u.mappers.OrderToResource(o), nil
}

func validateOrderFields(customerID int64, address string) error {
	if customerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid customerId")
	}
	if strings.TrimSpace(address) == "" {
		return NewHTTPError(http.StatusBadRequest, "deliveryAddress required")
	}
	return nil
}

func (u *OrderUsecase) Create(ctx context.Context, in mapper.OrderCreate) (mapper.OrderResource, error) {
	if err := validateOrderFields(in.CustomerID, in.DeliveryAddress); err != nil {
		return mapper.OrderResource{}, err
	}

	o := u.mappers.OrderFromCreate(in)
	if o.DateCreated.IsZero() {
		o.DateCreated = time.Now()
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return mapper.OrderResource{}, storeError(u.log, "create order", err)
	}

	u.log.Info("order created", zap.Int64("id", created.ID), zap.Int64("customer_id", created.CustomerID))
	return u.mappers.OrderToResource(created), nil
}

func (u *OrderUsecase) Update(ctx context.Context, pathID int64, in mapper.OrderUpdate) error {
	if pathID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if pathID != in.ID {
		return NewHTTPError(http.StatusBadRequest, "id in path and body must match")
	}
	if err := validateOrderFields(in.CustomerID, in.DeliveryAddress); err != nil {
		return err
	}

	o, err := u.orders.FindByID(ctx, pathID, repo.ExpandNone)
	if err != nil {
		return storeError(u.log, "update order", err)
	}

	u.mappers.ApplyOrderUpdate(in, &o)
	if err := u.orders.Update(ctx, o); err != nil {
		return storeError(u.log, "update order", err)
	}
	return nil
}

// Delete は注文と配下の明細を1トランザクションで消して、消した注文を返す。
func (u *OrderUsecase) Delete(ctx context.Context, id int64) (mapper.OrderResource, error) {
	if id <= 0 {
		return mapper.OrderResource{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out mapper.OrderResource
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, id, repo.ExpandNone)
		if err != nil {
			return err
		}

		if err := r.OrderDetails().DeleteByOrderID(ctx, id); err != nil {
			return err
		}
		if err := r.Orders().Delete(ctx, id); err != nil {
			return err
		}

		out = u.mappers.OrderToResource(o)
		return nil
	})
	if err != nil {
		return mapper.OrderResource{}, storeError(u.log, "delete order", err)
	}

	u.log.Info("order deleted", zap.Int64("id", id))
	return out, nil
}
