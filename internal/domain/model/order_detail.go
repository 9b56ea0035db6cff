package model

import "time"

type OrderDetail struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"orderId"`
	ProductID int64     `gorm:"not null;index" json:"productId"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	Version   int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`

	//合計計算用にプリロードする
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
