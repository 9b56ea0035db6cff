package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"warehouse/internal/domain/model"
	"warehouse/internal/mapper"
	"warehouse/internal/patch"
	repo "warehouse/internal/repository"
	"warehouse/internal/usecase"
)

func newProductUsecase(products *ProductRepoMock, details *OrderDetailRepoMock) *usecase.ProductUsecase {
	tx := &fakeTxManager{repos: txReposStub{products: products, orderDetails: details}}
	return usecase.NewProductUsecase(products, tx, mapper.NewRegistry(), zap.NewNop())
}

func TestProductUsecase_List_Success(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	items := []model.Product{
		{ID: 1, Label: "iPhone X", Price: decimal.NewFromInt(950), Available: true},
		{ID: 2, Label: "Samsung Smart TV", Price: decimal.NewFromInt(1100)},
	}
	products.On("List", mock.Anything, repo.ProductListQuery{Page: repo.PageSpec{Size: 0, Num: 1}}).
		Return(items, nil)

	got, err := uc.List(context.Background(), usecase.ListProductsInput{})

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "iPhone X", got[0].Label)
	assert.Equal(t, int64(2), got[1].ID)
	products.AssertExpectations(t)
}

func TestProductUsecase_List_PagingForwarded(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	size, num := 5, 3
	products.On("List", mock.Anything, repo.ProductListQuery{Page: repo.PageSpec{Size: 5, Num: 3}}).
		Return([]model.Product{}, nil)

	_, err := uc.List(context.Background(), usecase.ListProductsInput{PageSize: &size, PageNum: &num})

	assert.NoError(t, err)
	products.AssertExpectations(t)
}

func TestProductUsecase_List_PageNumWithoutSize(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	//sizeなしは無制限のままnumだけ通す（ストア側でoffsetは適用されない）
	num := 5
	products.On("List", mock.Anything, repo.ProductListQuery{Page: repo.PageSpec{Size: 0, Num: 5}}).
		Return([]model.Product{}, nil)

	_, err := uc.List(context.Background(), usecase.ListProductsInput{PageNum: &num})

	assert.NoError(t, err)
	products.AssertExpectations(t)
}

func TestProductUsecase_List_InvalidPage(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	zero := 0
	_, err := uc.List(context.Background(), usecase.ListProductsInput{PageSize: &zero})

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	products.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProductUsecase_List_NegativePriceBound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	neg := decimal.NewFromInt(-1)
	_, err := uc.List(context.Background(), usecase.ListProductsInput{LPrice: &neg})

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestProductUsecase_Get_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), 99)

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestProductUsecase_Create_Validation(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	cases := []struct {
		name string
		in   mapper.ProductCreate
	}{
		{"empty label", mapper.ProductCreate{Label: "  ", Price: decimal.NewFromInt(10)}},
		{"negative price", mapper.ProductCreate{Label: "Mug", Price: decimal.NewFromInt(-3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			httpErr, ok := usecase.AsHTTPError(err)
			assert.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		})
	}
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_Create_Success(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	in := mapper.ProductCreate{Label: "Mug", Price: decimal.NewFromInt(12), Available: true, ImageURI: "http://img/mug.png"}
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 0 && p.Label == "Mug" && p.Available
	})).Return(model.Product{ID: 11, Label: "Mug", Price: decimal.NewFromInt(12), Available: true, ImageURI: "http://img/mug.png"}, nil)

	got, err := uc.Create(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "Mug", got.Label)
	products.AssertExpectations(t)
}

func TestProductUsecase_Update_IDMismatch(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	err := uc.Update(context.Background(), 1, mapper.ProductUpdate{ID: 2, Label: "Mug", Price: decimal.NewFromInt(1)})

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProductUsecase_Update_Conflict(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Label: "Mug", Price: decimal.NewFromInt(1), Version: 3}, nil)
	products.On("Update", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	err := uc.Update(context.Background(), 1, mapper.ProductUpdate{ID: 1, Label: "Cup", Price: decimal.NewFromInt(2)})

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.Status)
}

func TestProductUsecase_Update_RowVanished(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Label: "Mug", Price: decimal.NewFromInt(1)}, nil)
	products.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.Update(context.Background(), 1, mapper.ProductUpdate{ID: 1, Label: "Cup", Price: decimal.NewFromInt(2)})

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestProductUsecase_Patch_ReplaceLabel(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	products.On("FindByID", mock.Anything, int64(4)).
		Return(model.Product{ID: 4, Label: "Mug", Price: decimal.NewFromInt(12), Available: true}, nil)
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 4 && p.Label == "Big Mug" && p.Available
	})).Return(nil)

	doc := patch.Document{{Op: patch.OpReplace, Path: "/label", Value: []byte(`"Big Mug"`)}}
	err := uc.Patch(context.Background(), 4, doc)

	assert.NoError(t, err)
	products.AssertExpectations(t)
}

func TestProductUsecase_Patch_IDChangeRejected(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	products.On("FindByID", mock.Anything, int64(4)).
		Return(model.Product{ID: 4, Label: "Mug", Price: decimal.NewFromInt(12)}, nil)

	doc := patch.Document{{Op: patch.OpReplace, Path: "/id", Value: []byte(`9`)}}
	err := uc.Patch(context.Background(), 4, doc)

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "modification of id isn't allowed", httpErr.Message)
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductUsecase_Patch_EmptyDocument(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	err := uc.Patch(context.Background(), 4, patch.Document{})

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestProductUsecase_Delete_CascadesDetails(t *testing.T) {
	products := new(ProductRepoMock)
	details := new(OrderDetailRepoMock)
	uc := newProductUsecase(products, details)

	products.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Label: "Mug"}, nil)
	details.On("DeleteByProductID", mock.Anything, int64(7)).Return(nil)
	products.On("Delete", mock.Anything, int64(7)).Return(nil)

	err := uc.Delete(context.Background(), 7)

	assert.NoError(t, err)
	products.AssertExpectations(t)
	details.AssertExpectations(t)
}

func TestProductUsecase_Delete_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	details := new(OrderDetailRepoMock)
	uc := newProductUsecase(products, details)

	products.On("FindByID", mock.Anything, int64(7)).Return(model.Product{}, repo.ErrNotFound)

	err := uc.Delete(context.Background(), 7)

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	details.AssertNotCalled(t, "DeleteByProductID", mock.Anything, mock.Anything)
}

func TestProductUsecase_Get_StoreFailure(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUsecase(products, new(OrderDetailRepoMock))

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{}, errors.New("connection reset"))

	_, err := uc.Get(context.Background(), 1)

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}
