package db

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse/internal/domain/model"
)

// EnsureSeedData は初回起動時だけカタログを投入する。
// 商品が1件でもあれば何もしない。
func EnsureSeedData(gormDB *gorm.DB) error {
	var n int64
	if err := gormDB.Model(&model.Product{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	products := []model.Product{
		{
			Label:     "iPhone X - Apple",
			Price:     decimal.RequireFromString("1399.99"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/mdgraphs/iphone-4g/512/iPhone-4G-shadow-icon.png",
		},
		{
			Label:     "Samsung Smart TV",
			Price:     decimal.RequireFromString("999.99"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/dailyoverview/tv/256/television-06-icon.png",
		},
		{
			Label:     "XXX Fan",
			Price:     decimal.RequireFromString("399.99"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/dapino/summer-blue/512/Fan-icon.png",
		},
		{
			Label:     "Magic wand",
			Price:     decimal.RequireFromString("1399.99"),
			Available: false,
			ImageURI:  "http://icons.iconarchive.com/icons/custom-icon-design/flatastic-6/512/Magic-wand-icon.png",
		},
		{
			Label:     "Funky Soccer Ball",
			Price:     decimal.RequireFromString("14.99"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/martin-berube/sport/256/Soccer-icon.png",
		},
		{
			Label:     "Teddy bear",
			Price:     decimal.RequireFromString("4.99"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/custom-icon-design/flatastic-10/512/Bear-icon.png",
		},
		{
			Label:     "Classic Watch",
			Price:     decimal.RequireFromString("123.78"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/r34n1m4ted/chanel/512/WATCH-icon.png",
		},
		{
			Label:     "Walking with dinosaurs DVD",
			Price:     decimal.RequireFromString("4.99"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/firstline1/movie-mega-pack-5/512/Walking-with-Dinosaurs-icon.png",
		},
		{
			Label:     "ADATA USB Stick 128 GB",
			Price:     decimal.RequireFromString("12.99"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/jonathan-rey/device/256/Kingston-DataTraveler-USB-Stick-icon.png",
		},
		{
			Label:     "ICONIX MICRO SD 16 GB",
			Price:     decimal.RequireFromString("1.99"),
			Available: true,
			ImageURI:  "http://icons.iconarchive.com/icons/dakirby309/simply-styled/128/Micro-SD-Card-icon.png",
		},
	}

	customers := []model.Customer{
		{FirstName: "John", LastName: "Doe"},
		{FirstName: "Jane", LastName: "Smith"},
		{FirstName: "Ivan", LastName: "Petrov"},
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		order := model.Order{
			CustomerID:      customers[0].ID,
			DateCreated:     time.Now(),
			DeliveryAddress: "221B Baker Street, London",
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		detail := model.OrderDetail{
			OrderID:   order.ID,
			ProductID: products[0].ID,
			Quantity:  2,
		}
		return tx.Create(&detail).Error
	})
}
