// Package hateoas はレスポンスに付けるナビゲーションリンクを組み立てる。
// 実際にロードされた関連の分しか辿らない。
package hateoas

import (
	"fmt"
	"net/http"

	"warehouse/internal/mapper"
)

// ref は1エンティティ分のリンク先（型名とID）。
type ref struct {
	name    string
	segment string
	id      int64
}

func productRef(id int64) ref     { return ref{name: "Product", segment: "Products", id: id} }
func customerRef(id int64) ref    { return ref{name: "Customer", segment: "Customers", id: id} }
func orderRef(id int64) ref       { return ref{name: "Order", segment: "Orders", id: id} }
func orderDetailRef(id int64) ref { return ref{name: "OrderDetail", segment: "OrderDetails", id: id} }

// Assembler は現在のリクエストのscheme/hostを起点にリンクを組み立てる。
type Assembler struct {
	base string
}

func NewAssembler(scheme string, host string) *Assembler {
	return &Assembler{base: scheme + "://" + host}
}

// links は自分自身へのリンク＋祖先チェーンへのリンク。
func (a *Assembler) links(self ref, ancestors ...ref) []mapper.Link {
	ls := make([]mapper.Link, 0, 1+len(ancestors))
	ls = append(ls, a.link(self))
	for _, r := range ancestors {
		ls = append(ls, a.link(r))
	}
	return ls
}

func (a *Assembler) link(r ref) mapper.Link {
	return mapper.Link{
		Rel:  "/" + r.name,
		Type: http.MethodGet,
		Href: fmt.Sprintf("%s/api/%s/%d", a.base, r.segment, r.id),
	}
}

func (a *Assembler) DecorateProduct(p *mapper.ProductResource) {
	p.Links = a.links(productRef(p.ID))
}

func (a *Assembler) DecorateProducts(ps []mapper.ProductResource) {
	for i := range ps {
		a.DecorateProduct(&ps[i])
	}
}

// DecorateCustomer は展開されている分だけ再帰的にリンクを付ける。
func (a *Assembler) DecorateCustomer(c *mapper.CustomerResource) {
	c.Links = a.links(customerRef(c.ID))
	for i := range c.Orders {
		a.decorateOrder(&c.Orders[i], customerRef(c.ID))
	}
}

func (a *Assembler) DecorateCustomers(cs []mapper.CustomerResource) {
	for i := range cs {
		a.DecorateCustomer(&cs[i])
	}
}

func (a *Assembler) DecorateOrder(o *mapper.OrderResource) {
	a.decorateOrder(o)
}

func (a *Assembler) DecorateOrders(os []mapper.OrderResource) {
	for i := range os {
		a.decorateOrder(&os[i])
	}
}

func (a *Assembler) decorateOrder(o *mapper.OrderResource, ancestors ...ref) {
	o.Links = a.links(orderRef(o.ID), ancestors...)
	for i := range o.OrderDetails {
		d := &o.OrderDetails[i]
		d.Links = a.links(orderDetailRef(d.ID), append([]ref{orderRef(o.ID)}, ancestors...)...)
	}
}

func (a *Assembler) DecorateOrderDetail(d *mapper.OrderDetailResource) {
	d.Links = a.links(orderDetailRef(d.ID))
}

func (a *Assembler) DecorateOrderDetails(ds []mapper.OrderDetailResource) {
	for i := range ds {
		a.DecorateOrderDetail(&ds[i])
	}
}
