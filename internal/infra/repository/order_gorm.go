package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// ユーザーの注文履歴。新しい順。
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

// 管理者用。全注文に注文者名を結合して新しい順で返す。
func (r *OrderGormRepository) ListAllWithUser(ctx context.Context) ([]repo.OrderWithUser, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return []repo.OrderWithUser{}, err
	}

	var names []struct {
		ID       int64
		UserName string
	}
	err = r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, users.name as user_name").
		Joins("join users on users.id = orders.user_id").
		Scan(&names).Error
	if err != nil {
		return []repo.OrderWithUser{}, err
	}

	nameByOrder := make(map[int64]string, len(names))
	for _, n := range names {
		nameByOrder[n.ID] = n.UserName
	}

	out := make([]repo.OrderWithUser, 0, len(orders))
	for _, o := range orders {
		out = append(out, repo.OrderWithUser{
			Order:    o,
			UserName: nameByOrder[o.ID],
		})
	}
	return out, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
