package mapper

import (
	"encoding/xml"
	"time"

	"github.com/shopspring/decimal"
)

// Link はレスポンスに埋め込むナビゲーションリンク。
// 転送用シェイプに属するので永続エンティティには付けない。
type Link struct {
	Rel  string `json:"rel" xml:"rel"`
	Type string `json:"type" xml:"type"`
	Href string `json:"href" xml:"href"`
}

// 取得系の転送用シェイプ

type ProductResource struct {
	XMLName   xml.Name        `json:"-" xml:"Product"`
	ID        int64           `json:"id" xml:"id"`
	Label     string          `json:"label" xml:"label"`
	Price     decimal.Decimal `json:"price" xml:"price"`
	Available bool            `json:"available" xml:"available"`
	ImageURI  string          `json:"imageUri" xml:"imageUri"`
	Links     []Link          `json:"links" xml:"links>link"`
}

type CustomerResource struct {
	XMLName   xml.Name        `json:"-" xml:"Customer"`
	ID        int64           `json:"id" xml:"id"`
	FirstName string          `json:"firstName" xml:"firstName"`
	LastName  string          `json:"lastName" xml:"lastName"`
	Orders    []OrderResource `json:"orders" xml:"orders>Order"`
	Links     []Link          `json:"links" xml:"links>link"`
}

type OrderResource struct {
	XMLName         xml.Name              `json:"-" xml:"Order"`
	ID              int64                 `json:"id" xml:"id"`
	CustomerID      int64                 `json:"customerId" xml:"customerId"`
	DateCreated     time.Time             `json:"dateCreated" xml:"dateCreated"`
	DeliveryAddress string                `json:"deliveryAddress" xml:"deliveryAddress"`
	Total           decimal.Decimal       `json:"total" xml:"total"`
	OrderDetails    []OrderDetailResource `json:"orderDetails" xml:"orderDetails>OrderDetail"`
	Links           []Link                `json:"links" xml:"links>link"`
}

type OrderDetailResource struct {
	XMLName   xml.Name `json:"-" xml:"OrderDetail"`
	ID        int64    `json:"id" xml:"id"`
	OrderID   int64    `json:"orderId" xml:"orderId"`
	ProductID int64    `json:"productId" xml:"productId"`
	Quantity  int64    `json:"quantity" xml:"quantity"`
	Links     []Link   `json:"links" xml:"links>link"`
}

// 作成・置換系の入力シェイプ

type ProductCreate struct {
	Label     string          `json:"label"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
	ImageURI  string          `json:"imageUri"`
}

type ProductUpdate struct {
	ID        int64           `json:"id"`
	Label     string          `json:"label"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
	ImageURI  string          `json:"imageUri"`
}

type CustomerCreate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CustomerUpdate struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type OrderCreate struct {
	CustomerID      int64      `json:"customerId"`
	DateCreated     *time.Time `json:"dateCreated,omitempty"`
	DeliveryAddress string     `json:"deliveryAddress"`
}

type OrderUpdate struct {
	ID              int64      `json:"id"`
	CustomerID      int64      `json:"customerId"`
	DateCreated     *time.Time `json:"dateCreated,omitempty"`
	DeliveryAddress string     `json:"deliveryAddress"`
}

type OrderDetailCreate struct {
	OrderID   int64 `json:"orderId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type OrderDetailUpdate struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"orderId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// パッチ用スナップショット。jsonタグ名がパッチのフィールドパスになる。

type ProductPatch struct {
	ID        int64           `json:"id"`
	Label     string          `json:"label"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
	ImageURI  string          `json:"imageUri"`
}

type CustomerPatch struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
