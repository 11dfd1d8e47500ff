package model

import (
	"github.com/shopspring/decimal"
)

// デリバリーの構成要素カテゴリ（DBのカテゴリIDに対応）
const (
	ComponentCategoryPasta int64 = 1
	ComponentCategoryDrink int64 = 4
	ComponentCategorySauce int64 = 5
)

// デリバリー注文の構成要素（パスタ・ソース・ドリンク）
// メニュー商品とは別テーブルで管理する。
type DeliveryComponent struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
	Rating      int             `gorm:"not null;default:0" json:"rating"`
}
