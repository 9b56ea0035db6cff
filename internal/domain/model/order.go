package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID      int64     `gorm:"not null;index" json:"customerId"`
	DateCreated     time.Time `gorm:"not null" json:"dateCreated"`
	DeliveryAddress string    `gorm:"type:text;not null" json:"deliveryAddress"`
	Version         int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"-"`

	//合計は保存しない（表示用に明細から計算する）
	Total decimal.Decimal `gorm:"-" json:"total"`

	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"orderDetails"`
}
