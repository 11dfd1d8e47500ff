package repository

import (
	"app/internal/domain/model"
	"context"
)

// デリバリー部材（パスタ・ソース・ドリンク）の読み書き。
// 段階選択の一覧はカテゴリIDで引く。
type DeliveryComponentRepository interface {
	List(ctx context.Context) ([]model.DeliveryComponent, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.DeliveryComponent, error)
	FindByID(ctx context.Context, id int64) (model.DeliveryComponent, error)

	Create(ctx context.Context, c model.DeliveryComponent) (model.DeliveryComponent, error)
	Update(ctx context.Context, c model.DeliveryComponent) error
	Delete(ctx context.Context, id int64) error
}
