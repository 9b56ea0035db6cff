package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Label     string          `gorm:"type:varchar(255);not null" json:"label"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Available bool            `gorm:"not null;default:false" json:"available"`
	ImageURI  string          `gorm:"column:image_uri;type:text" json:"imageUri"`
	Version   int64           `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"-"`
}
