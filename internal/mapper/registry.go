package mapper

import (
	"github.com/shopspring/decimal"

	"warehouse/internal/domain/model"
)

// Registry はエンティティと転送用シェイプの間の純粋な射影の束。
// 起動時に一度だけ作ってhandler/usecaseへ明示的に渡す。隠れたグローバル状態は持たない。
type Registry struct{}

func NewRegistry() *Registry {
	return &Registry{}
}

func (m *Registry) ProductToResource(p model.Product) ProductResource {
	return ProductResource{
		ID:        p.ID,
		Label:     p.Label,
		Price:     p.Price,
		Available: p.Available,
		ImageURI:  p.ImageURI,
	}
}

func (m *Registry) ProductsToResources(ps []model.Product) []ProductResource {
	out := make([]ProductResource, 0, len(ps))
	for _, p := range ps {
		out = append(out, m.ProductToResource(p))
	}
	return out
}

func (m *Registry) ProductFromCreate(in ProductCreate) model.Product {
	return model.Product{
		Label:     in.Label,
		Price:     in.Price,
		Available: in.Available,
		ImageURI:  in.ImageURI,
	}
}

func (m *Registry) ApplyProductUpdate(in ProductUpdate, p *model.Product) {
	p.Label = in.Label
	p.Price = in.Price
	p.Available = in.Available
	p.ImageURI = in.ImageURI
}

func (m *Registry) ProductToPatch(p model.Product) ProductPatch {
	return ProductPatch{
		ID:        p.ID,
		Label:     p.Label,
		Price:     p.Price,
		Available: p.Available,
		ImageURI:  p.ImageURI,
	}
}

func (m *Registry) ApplyProductPatch(in ProductPatch, p *model.Product) {
	p.Label = in.Label
	p.Price = in.Price
	p.Available = in.Available
	p.ImageURI = in.ImageURI
}

func (m *Registry) CustomerToResource(c model.Customer) CustomerResource {
	orders := make([]OrderResource, 0, len(c.Orders))
	for _, o := range c.Orders {
		orders = append(orders, m.OrderToResource(o))
	}
	return CustomerResource{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Orders:    orders,
	}
}

func (m *Registry) CustomersToResources(cs []model.Customer) []CustomerResource {
	out := make([]CustomerResource, 0, len(cs))
	for _, c := range cs {
		out = append(out, m.CustomerToResource(c))
	}
	return out
}

func (m *Registry) CustomerFromCreate(in CustomerCreate) model.Customer {
	return model.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
}

func (m *Registry) ApplyCustomerUpdate(in CustomerUpdate, c *model.Customer) {
	c.FirstName = in.FirstName
	c.LastName = in.LastName
}

func (m *Registry) CustomerToPatch(c model.Customer) CustomerPatch {
	return CustomerPatch{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

func (m *Registry) ApplyCustomerPatch(in CustomerPatch, c *model.Customer) {
	c.FirstName = in.FirstName
	c.LastName = in.LastName
}

// OrderToResource はロード済みの明細から表示用の合計を計算する。
// 明細が未展開なら合計は0のまま（権威ある値ではない）。
func (m *Registry) OrderToResource(o model.Order) OrderResource {
	details := make([]OrderDetailResource, 0, len(o.OrderDetails))
	total := decimal.Zero
	for _, d := range o.OrderDetails {
		details = append(details, m.OrderDetailToResource(d))
		if d.Product != nil {
			total = total.Add(d.Product.Price.Mul(decimal.NewFromInt(d.Quantity)))
		}
	}
	return OrderResource{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		DateCreated:     o.DateCreated,
		DeliveryAddress: o.DeliveryAddress,
		Total:           total,
		OrderDetails:    details,
	}
}

func (m *Registry) OrdersToResources(os []model.Order) []OrderResource {
	out := make([]OrderResource, 0, len(os))
	for _, o := range os {
		out = append(out, m.OrderToResource(o))
	}
	return out
}

func (m *Registry) OrderFromCreate(in OrderCreate) model.Order {
	o := model.Order{
		CustomerID:      in.CustomerID,
		DeliveryAddress: in.DeliveryAddress,
	}
	if in.DateCreated != nil {
		o.DateCreated = *in.DateCreated
	}
	return o
}

func (m *Registry) ApplyOrderUpdate(in OrderUpdate, o *model.Order) {
	o.CustomerID = in.CustomerID
	o.DeliveryAddress = in.DeliveryAddress
	if in.DateCreated != nil {
		o.DateCreated = *in.DateCreated
	}
}

func (m *Registry) OrderDetailToResource(d model.OrderDetail) OrderDetailResource {
	return OrderDetailResource{
		ID:        d.ID,
		OrderID:   d.OrderID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
	}
}

func (m *Registry) OrderDetailsToResources(ds []model.OrderDetail) []OrderDetailResource {
	out := make([]OrderDetailResource, 0, len(ds))
	for _, d := range ds {
		out = append(out, m.OrderDetailToResource(d))
	}
	return out
}

func (m *Registry) OrderDetailFromCreate(in OrderDetailCreate) model.OrderDetail {
	return model.OrderDetail{
		OrderID:   in.OrderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
}

func (m *Registry) ApplyOrderDetailUpdate(in OrderDetailUpdate, d *model.OrderDetail) {
	d.OrderID = in.OrderID
	d.ProductID = in.ProductID
	d.Quantity = in.Quantity
}
