package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusFinalized  OrderStatus = "FINALIZED"
)

// 注文ヘッダ。明細と同一トランザクションで作成される。
// DeliveryAddressは確定時点のユーザー住所のコピー（参照ではない）。
type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"not null;index" json:"user_id"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	DeliveryAddress string          `gorm:"type:text;not null" json:"delivery_address"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
