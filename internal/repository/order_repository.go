package repository

import (
	"context"

	"app/internal/domain/model"
)

// 管理者一覧用。注文に注文者名を結合した行。
type OrderWithUser struct {
	Order    model.Order
	UserName string
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 新しい順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	// 全注文＋注文者名、新しい順
	ListAllWithUser(ctx context.Context) ([]OrderWithUser, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
