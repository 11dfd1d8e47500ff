package model

// 商品カテゴリ（メニューとデリバリー部材の両方で使う）
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}
