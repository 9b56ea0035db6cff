package model

import "time"

type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"type:varchar(255)" json:"firstName"`
	LastName  string    `gorm:"type:varchar(255)" json:"lastName"`
	Version   int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`

	//依存行の削除はストレージ層で明示的に行うのでRESTRICT
	Orders []Order `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"orders"`
}
