package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"warehouse/internal/mapper"
	"warehouse/internal/patch"
	repo "warehouse/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
	tx       repo.TransactionManager
	mappers  *mapper.Registry
	log      *zap.Logger
}

// DI
func NewProductUsecase(
	products repo.ProductRepository,
	tx repo.TransactionManager,
	mappers *mapper.Registry,
	log *zap.Logger,
) *ProductUsecase {
	return &ProductUsecase{products: products, tx: tx, mappers: mappers, log: log}
}

// GET /api/Productsの入力DTO
type ListProductsInput struct {
	Label    string
	LPrice   *decimal.Decimal
	GPrice   *decimal.Decimal
	PageSize *int
	PageNum  *int
}

// validatePage は page.size / page.num を検証してPageSpecに畳む。
// 未指定のsizeは無制限の番兵（Size 0）、未指定のnumは1。
func validatePage(size *int, num *int) (repo.PageSpec, error) {
	p := repo.PageSpec{Size: 0, Num: 1}
	if size != nil {
		if *size < 1 {
			return repo.PageSpec{}, NewHTTPError(http.StatusBadRequest, "invalid page.size")
		}
		p.Size = *size
	}
	if num != nil {
		if *num < 1 {
			return repo.PageSpec{}, NewHTTPError(http.StatusBadRequest, "invalid page.num")
		}
		p.Num = *num
	}
	return p, nil
}

func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) ([]mapper.ProductResource, error) {
	page, err := validatePage(in.PageSize, in.PageNum)
	if err != nil {
		return nil, err
	}
	if in.LPrice != nil && in.LPrice.IsNegative() {
		return nil, NewHTTPError(http.StatusBadRequest, "lprice must be >= 0")
	}
	if in.GPrice != nil && in.GPrice.IsNegative() {
		return nil, NewHTTPError(http.StatusBadRequest, "gprice must be >= 0")
	}

	products, err := u.products.List(ctx, repo.ProductListQuery{
		Label:  in.Label,
		LPrice: in.LPrice,
		GPrice: in.GPrice,
		Page:   page,
	})
	if err != nil {
		return nil, storeError(u.log, "list products", err)
	}
	return u.mappers.ProductsToResources(products), nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (mapper.ProductResource, error) {
	if id <= 0 {
		return mapper.ProductResource{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return mapper.ProductResource{}, storeError(u.log, "get product", err)
	}
	return u.mappers.ProductToResource(p), nil
}

func validateProductFields(label string, price decimal.Decimal) error {
	if strings.TrimSpace(label) == "" {
		return NewHTTPError(http.StatusBadRequest, "label required")
	}
	if price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	return nil
}

func (u *ProductUsecase) Create(ctx context.Context, in mapper.ProductCreate) (mapper.ProductResource, error) {
	if err := validateProductFields(in.Label, in.Price); err != nil {
		return mapper.ProductResource{}, err
	}

	created, err := u.products.Create(ctx, u.mappers.ProductFromCreate(in))
	if err != nil {
		return mapper.ProductResource{}, storeError(u.log, "create product", err)
	}

	u.log.Info("product created", zap.Int64("id", created.ID))
	return u.mappers.ProductToResource(created), nil
}

func (u *ProductUsecase) Update(ctx context.Context, pathID int64, in mapper.ProductUpdate) error {
	if pathID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if pathID != in.ID {
		return NewHTTPError(http.StatusBadRequest, "id in path and body must match")
	}
	if err := validateProductFields(in.Label, in.Price); err != nil {
		return err
	}

	p, err := u.products.FindByID(ctx, pathID)
	if err != nil {
		return storeError(u.log, "update product", err)
	}

	u.mappers.ApplyProductUpdate(in, &p)
	if err := u.products.Update(ctx, p); err != nil {
		return storeError(u.log, "update product", err)
	}
	return nil
}

func (u *ProductUsecase) Patch(ctx context.Context, id int64, doc patch.Document) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if len(doc) == 0 {
		return NewHTTPError(http.StatusBadRequest, "empty patch document")
	}

	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return storeError(u.log, "patch product", err)
	}

	snapshot := u.mappers.ProductToPatch(p)
	var patched mapper.ProductPatch
	if err := patch.Apply(doc, snapshot, &patched); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validateProductFields(patched.Label, patched.Price); err != nil {
		return err
	}
	if patched.ID != p.ID {
		return NewHTTPError(http.StatusBadRequest, "modification of id isn't allowed")
	}

	u.mappers.ApplyProductPatch(patched, &p)
	if err := u.products.Update(ctx, p); err != nil {
		return storeError(u.log, "patch product", err)
	}
	return nil
}

// Delete は商品を参照する明細ごと1トランザクションで消す。
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, id); err != nil {
			return err
		}
		if err := r.OrderDetails().DeleteByProductID(ctx, id); err != nil {
			return err
		}
		return r.Products().Delete(ctx, id)
	})
	if err != nil {
		return storeError(u.log, "delete product", err)
	}

	u.log.Info("product deleted", zap.Int64("id", id))
	return nil
}
