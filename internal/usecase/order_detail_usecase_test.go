package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"warehouse/internal/domain/model"
	"warehouse/internal/mapper"
	repo "warehouse/internal/repository"
	"warehouse/internal/usecase"
)

func newOrderDetailUsecase(details *OrderDetailRepoMock) *usecase.OrderDetailUsecase {
	return usecase.NewOrderDetailUsecase(details, mapper.NewRegistry(), zap.NewNop())
}

func TestOrderDetailUsecase_Create_Validation(t *testing.T) {
	details := new(OrderDetailRepoMock)
	uc := newOrderDetailUsecase(details)

	cases := []struct {
		name string
		in   mapper.OrderDetailCreate
	}{
		{"missing order", mapper.OrderDetailCreate{ProductID: 1, Quantity: 1}},
		{"missing product", mapper.OrderDetailCreate{OrderID: 1, Quantity: 1}},
		{"zero quantity", mapper.OrderDetailCreate{OrderID: 1, ProductID: 1}},
		{"negative quantity", mapper.OrderDetailCreate{OrderID: 1, ProductID: 1, Quantity: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			httpErr, ok := usecase.AsHTTPError(err)
			assert.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		})
	}
	details.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderDetailUsecase_Create_DanglingReference(t *testing.T) {
	details := new(OrderDetailRepoMock)
	uc := newOrderDetailUsecase(details)

	details.On("Create", mock.Anything, mock.Anything).Return(model.OrderDetail{}, repo.ErrForeignKey)

	_, err := uc.Create(context.Background(), mapper.OrderDetailCreate{OrderID: 999, ProductID: 1, Quantity: 1})

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "referenced entity does not exist", httpErr.Message)
}

func TestOrderDetailUsecase_Delete_ReturnsDeleted(t *testing.T) {
	details := new(OrderDetailRepoMock)
	uc := newOrderDetailUsecase(details)

	details.On("FindByID", mock.Anything, int64(100)).
		Return(model.OrderDetail{ID: 100, OrderID: 10, ProductID: 3, Quantity: 2}, nil)
	details.On("Delete", mock.Anything, int64(100)).Return(nil)

	got, err := uc.Delete(context.Background(), 100)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
	assert.Equal(t, int64(2), got.Quantity)
	details.AssertExpectations(t)
}

func TestOrderDetailUsecase_Update_IDMismatch(t *testing.T) {
	details := new(OrderDetailRepoMock)
	uc := newOrderDetailUsecase(details)

	err := uc.Update(context.Background(), 1, mapper.OrderDetailUpdate{ID: 2, OrderID: 1, ProductID: 1, Quantity: 1})

	httpErr, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	details.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
