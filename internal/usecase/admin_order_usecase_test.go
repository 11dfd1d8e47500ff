package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminOrderFixture() (*AdminOrderUsecase, *TxManagerMock, *OrderRepoMock) {
	orders := &OrderRepoMock{}
	tx := &TxManagerMock{
		Repos: &TxReposMock{orders: orders},
	}
	return NewAdminOrderUsecase(tx, orders), tx, orders
}

func TestAdminOrderList(t *testing.T) {
	uc, _, orders := newAdminOrderFixture()

	now := time.Now()
	orders.On("ListAllWithUser", mock.Anything).Return([]repo.OrderWithUser{
		{
			Order: model.Order{
				ID: 2, UserID: 42, Status: model.OrderStatusInProgress,
				TotalAmount: dec("55.00"), DeliveryAddress: "Rua A, 12", CreatedAt: now,
			},
			UserName: "Ana",
		},
		{
			Order: model.Order{
				ID: 1, UserID: 43, Status: model.OrderStatusFinalized,
				TotalAmount: dec("30.00"), DeliveryAddress: "Rua B, 3", CreatedAt: now.Add(-time.Hour),
			},
			UserName: "Bruno",
		},
	}, nil)

	out, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, "Ana", out[0].Customer)
	assert.Equal(t, "Bruno", out[1].Customer)
}

func TestAdminOrderFinalize(t *testing.T) {
	uc, tx, orders := newAdminOrderFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, Status: model.OrderStatusInProgress}, nil)
	orders.On("UpdateStatus", mock.Anything, int64(5), model.OrderStatusFinalized).
		Return(nil)

	err := uc.Finalize(context.Background(), 5)

	require.NoError(t, err)
	orders.AssertCalled(t, "UpdateStatus", mock.Anything, int64(5), model.OrderStatusFinalized)
}

func TestAdminOrderFinalizeAlreadyFinalized(t *testing.T) {
	uc, tx, orders := newAdminOrderFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(5)).
		Return(model.Order{ID: 5, Status: model.OrderStatusFinalized}, nil)

	err := uc.Finalize(context.Background(), 5)

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderFinalizeNotFound(t *testing.T) {
	uc, tx, orders := newAdminOrderFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(99)).
		Return(model.Order{}, repo.ErrNotFound)

	err := uc.Finalize(context.Background(), 99)

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestAdminOrderFinalizeInvalidID(t *testing.T) {
	uc, tx, _ := newAdminOrderFixture()

	err := uc.Finalize(context.Background(), 0)

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}
