package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type DeliveryComponentGormRepository struct {
	db *gorm.DB
}

// DI
func NewDeliveryComponentGormRepository(db *gorm.DB) *DeliveryComponentGormRepository {
	return &DeliveryComponentGormRepository{db: db}
}

func (r *DeliveryComponentGormRepository) List(ctx context.Context) ([]model.DeliveryComponent, error) {
	var items []model.DeliveryComponent
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.DeliveryComponent{}, err
	}
	return items, nil
}

// 段階選択の一覧（パスタ/ソース/ドリンク）をカテゴリで引く
func (r *DeliveryComponentGormRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.DeliveryComponent, error) {
	var items []model.DeliveryComponent
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.DeliveryComponent{}, err
	}
	return items, nil
}

func (r *DeliveryComponentGormRepository) FindByID(ctx context.Context, id int64) (model.DeliveryComponent, error) {
	var c model.DeliveryComponent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DeliveryComponent{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DeliveryComponent{}, err
	}
	return c, nil
}

func (r *DeliveryComponentGormRepository) Create(ctx context.Context, c model.DeliveryComponent) (model.DeliveryComponent, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.DeliveryComponent{}, err
	}
	return c, nil
}

func (r *DeliveryComponentGormRepository) Update(ctx context.Context, c model.DeliveryComponent) error {
	res := r.db.WithContext(ctx).Model(&model.DeliveryComponent{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
			"price":       c.Price,
			"category_id": c.CategoryID,
			"rating":      c.Rating,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *DeliveryComponentGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.DeliveryComponent{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
