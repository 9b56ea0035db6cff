package usecase

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"warehouse/internal/mapper"
	repo "warehouse/internal/repository"
)

type OrderDetailUsecase struct {
	details repo.OrderDetailRepository
	mappers *mapper.Registry
	log     *zap.Logger
}

// DI
func NewOrderDetailUsecase(
	details repo.OrderDetailRepository,
	mappers *mapper.Registry,
	log *zap.Logger,
) *OrderDetailUsecase {
	return &OrderDetailUsecase{details: details, mappers: mappers, log: log}
}

type ListOrderDetailsInput struct {
	PageSize *int
	PageNum  *int
}

func (u *OrderDetailUsecase) List(ctx context.Context, in ListOrderDetailsInput) ([]mapper.OrderDetailResource, error) {
	page, err := validatePage(in.PageSize, in.PageNum)
	if err != nil {
		return nil, err
	}

	details, err := u.details.List(ctx, page)
	if err != nil {
		return nil, storeError(u.log, "list order details", err)
	}
	return u.mappers.OrderDetailsToResources(details), nil
}

func (u *OrderDetailUsecase) Get(ctx context.Context, id int64) (mapper.OrderDetailResource, error) {
	if id <= 0 {
		return mapper.OrderDetailResource{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	d, err := u.details.FindByID(ctx, id)
	if err != nil {
		return mapper.OrderDetailResource{}, storeError(u.log, "get order detail", err)
	}
	return u.mappers.OrderDetailToResource(d), nil
}

func validateOrderDetailFields(orderID int64, productID int64, quantity int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid orderId")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid productId")
	}
	if quantity <= 0 {
		return NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}
	return nil
}

func (u *OrderDetailUsecase) Create(ctx context.Context, in mapper.OrderDetailCreate) (mapper.OrderDetailResource, error) {
	if err := validateOrderDetailFields(in.OrderID, in.ProductID, in.Quantity); err != nil {
		return mapper.OrderDetailResource{}, err
	}

	created, err := u.details.Create(ctx, u.mappers.OrderDetailFromCreate(in))
	if err != nil {
		return mapper.OrderDetailResource{}, storeError(u.log, "create order detail", err)
	}

	u.log.Info("order detail created", zap.Int64("id", created.ID), zap.Int64("order_id", created.OrderID))
	return u.mappers.OrderDetailToResource(created), nil
}

func (u *OrderDetailUsecase) Update(ctx context.Context, pathID int64, in mapper.OrderDetailUpdate) error {
	if pathID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if pathID != in.ID {
		return NewHTTPError(http.StatusBadRequest, "id in path and body must match")
	}
	if err := validateOrderDetailFields(in.OrderID, in.ProductID, in.Quantity); err != nil {
		return err
	}

	d, err := u.details.FindByID(ctx, pathID)
	if err != nil {
		return storeError(u.log, "update order detail", err)
	}

	u.mappers.ApplyOrderDetailUpdate(in, &d)
	if err := u.details.Update(ctx, d); err != nil {
		return storeError(u.log, "update order detail", err)
	}
	return nil
}

func (u *OrderDetailUsecase) Delete(ctx context.Context, id int64) (mapper.OrderDetailResource, error) {
	if id <= 0 {
		return mapper.OrderDetailResource{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	d, err := u.details.FindByID(ctx, id)
	if err != nil {
		return mapper.OrderDetailResource{}, storeError(u.log, "delete order detail", err)
	}
	if err := u.details.Delete(ctx, id); err != nil {
		return mapper.OrderDetailResource{}, storeError(u.log, "delete order detail", err)
	}

	u.log.Info("order detail deleted", zap.Int64("id", id))
	return u.mappers.OrderDetailToResource(d), nil
}
