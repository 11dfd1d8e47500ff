package model

import (
	"github.com/shopspring/decimal"
)

// メニュー商品
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
	Rating      int             `gorm:"not null;default:0" json:"rating"`
}
