package usecase

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"warehouse/internal/mapper"
	"warehouse/internal/patch"
	repo "warehouse/internal/repository"
)

type CustomerUsecase struct {
	customers repo.CustomerRepository
	tx        repo.TransactionManager
	mappers   *mapper.Registry
	log       *zap.Logger
}

// DI
func NewCustomerUsecase(
	customers repo.CustomerRepository,
	tx repo.TransactionManager,
	mappers *mapper.Registry,
	log *zap.Logger,
) *CustomerUsecase {
	return &CustomerUsecase{customers: customers, tx: tx, mappers: mappers, log: log}
}

// GET /api/Customersの入力DTO
type ListCustomersInput struct {
	FirstName        string
	LastName         string
	FirstNamePrefix  string
	LastNamePrefix   string
	WithOrders       bool
	WithOrderDetails bool
	PageSize         *int
	PageNum          *int
}

func (u *CustomerUsecase) List(ctx context.Context, in ListCustomersInput) ([]mapper.CustomerResource, error) {
	page, err := validatePage(in.PageSize, in.PageNum)
	if err != nil {
		return nil, err
	}

	//展開の深さはクエリ発行前に決める
	depth := repo.ResolveExpand(in.WithOrders, in.WithOrderDetails)

	customers, err := u.customers.List(ctx, repo.CustomerListQuery{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		FirstNamePrefix: in.FirstNamePrefix,
		LastNamePrefix:  in.LastNamePrefix,
		Expand:          depth,
		Page:            page,
	})
	if err != nil {
		return nil, storeError(u.log, "list customers", err)
	}
	return u.mappers.CustomersToResources(customers), nil
}

func (u *CustomerUsecase) Get(ctx context.Context, id int64, withOrders bool, withOrderDetails bool) (mapper.CustomerResource, error) {
	if id <= 0 {
		return mapper.CustomerResource{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	depth := repo.ResolveExpand(withOrders, withOrderDetails)
	c, err := u.customers.FindByID(ctx, id, depth)
	if err != nil {
		return mapper.CustomerResource{}, storeError(u.log, "get customer", err)
	}
	return u.mappers.CustomerToResource(c), nil
}

func (u *CustomerUsecase) Create(ctx context.Context, in mapper.CustomerCreate) (mapper.CustomerResource, error) {
	created, err := u.customers.Create(ctx, u.mappers.CustomerFromCreate(in))
	if err != nil {
		return mapper.CustomerResource{}, storeError(u.log, "create customer", err)
	}

	u.log.Info("customer created", zap.Int64("id", created.ID))
	return u.mappers.CustomerToResource(created), nil
}

func (u *CustomerUsecase) Update(ctx context.Context, pathID int64, in mapper.CustomerUpdate) error {
	if pathID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if pathID != in.ID {
		return NewHTTPError(http.StatusBadRequest, "id in path and body must match")
	}

	c, err := u.customers.FindByID(ctx, pathID, repo.ExpandNone)
	if err != nil {
		return storeError(u.log, "update customer", err)
	}

	u.mappers.ApplyCustomerUpdate(in, &c)
	if err := u.customers.Update(ctx, c); err != nil {
		return storeError(u.log, "update customer", err)
	}
	return nil
}

func (u *CustomerUsecase) Patch(ctx context.Context, id int64, doc patch.Document) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if len(doc) == 0 {
		return NewHTTPError(http.StatusBadRequest, "empty patch document")
	}

	c, err := u.customers.FindByID(ctx, id, repo.ExpandNone)
	if err != nil {
		return storeError(u.log, "patch customer", err)
	}

	snapshot := u.mappers.CustomerToPatch(c)
	var patched mapper.CustomerPatch
	if err := patch.Apply(doc, snapshot, &patched); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if patched.ID != c.ID {
		return NewHTTPError(http.StatusBadRequest, "modification of id isn't allowed")
	}

	u.mappers.ApplyCustomerPatch(patched, &c)
	if err := u.customers.Update(ctx, c); err != nil {
		return storeError(u.log, "patch customer", err)
	}
	return nil
}

// Delete は顧客と配下の注文・明細を1トランザクションで消して、消した顧客を返す。
func (u *CustomerUsecase) Delete(ctx context.Context, id int64) (mapper.CustomerResource, error) {
	if id <= 0 {
		return mapper.CustomerResource{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out mapper.CustomerResource
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		c, err := r.Customers().FindByID(ctx, id, repo.ExpandNone)
		if err != nil {
			return err
		}

		orderIDs, err := r.Orders().ListIDsByCustomerID(ctx, id)
		if err != nil {
			return err
		}
		if err := r.OrderDetails().DeleteByOrderIDs(ctx, orderIDs); err != nil {
			return err
		}
		if err := r.Orders().DeleteByCustomerID(ctx, id); err != nil {
			return err
		}
		if err := r.Customers().Delete(ctx, id); err != nil {
			return err
		}

		out = u.mappers.CustomerToResource(c)
		return nil
	})
	if err != nil {
		return mapper.CustomerResource{}, storeError(u.log, "delete customer", err)
	}

	u.log.Info("customer deleted", zap.Int64("id", id))
	return out, nil
}
