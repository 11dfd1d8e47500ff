package model

import "time"

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	// 注文確定時にスナップショットとしてコピーされる配達先
	Address   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
