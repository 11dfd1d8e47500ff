package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
}

func NewAdminOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, orders: orders}
}

type AdminOrderOutput struct {
	OrderOutput
	Customer string `json:"customer"`
}

// List は全注文に注文者名を付けて新しい順で返す。
func (u *AdminOrderUsecase) List(ctx context.Context) ([]AdminOrderOutput, error) {
	rows, err := u.orders.ListAllWithUser(ctx)
	if err != nil {
		return []AdminOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]AdminOrderOutput, 0, len(rows))
	for _, row := range rows {
		outs = append(outs, AdminOrderOutput{
			OrderOutput: toOrderOutput(row.Order),
			Customer:    row.UserName,
		})
	}
	return outs, nil
}

// Finalize は注文をFINALIZEDにする。
// 許される遷移はIN_PROGRESS→FINALIZEDだけ。
func (u *AdminOrderUsecase) Finalize(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 終端ガード
		if o.Status == model.OrderStatusFinalized {
			return NewHTTPError(http.StatusBadRequest, "order already finalized")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusFinalized); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}
