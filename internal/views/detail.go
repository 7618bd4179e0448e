package views

import (
	"sort"
	"time"

	"backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// OrderLine is the one-line summary of an order shown inside another entity's detail.
type OrderLine struct {
	ID         int64
	OrderDate  time.Time
	TotalPrice float64
	Account    string
	Products   int
}

// ProductDetail is the read-only view of a product and the orders containing it.
type ProductDetail struct {
	Product models.Product
	Orders  []OrderLine
}

// AccountDetail is the read-only view of an account, its orders and the distinct
// products it has ordered.
type AccountDetail struct {
	Account  models.Account
	Orders   []OrderLine
	Products []models.Product
	Spent    float64
}

// OrderDetail is the read-only view of an order.
type OrderDetail struct {
	Order    models.Order
	Account  string
	Products []models.Product
}

func lineOf(o models.Order) OrderLine {
	line := OrderLine{ID: o.ID, OrderDate: o.OrderDate, TotalPrice: o.TotalPrice, Products: len(o.Products)}
	if o.Account != nil {
		line.Account = o.Account.DisplayName()
	}
	return line
}

func linesOf(orders []models.Order) []OrderLine {
	lines := make([]OrderLine, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, lineOf(o))
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines
}

// DescribeProduct projects p for display.
func DescribeProduct(p models.Product) ProductDetail {
	return ProductDetail{Product: p, Orders: linesOf(p.Orders)}
}

// DescribeAccount projects a for display. Products falls back to the products of
// the embedded orders when the server did not fill it in.
func DescribeAccount(a models.Account) AccountDetail {
	d := AccountDetail{Account: a, Orders: linesOf(a.Orders), Products: a.Products}
	spent := decimal.Zero
	for _, o := range a.Orders {
		spent = spent.Add(decimal.NewFromFloat(o.TotalPrice))
	}
	d.Spent = spent.InexactFloat64()
	if len(d.Products) == 0 {
		seen := make(map[int64]bool)
		for _, o := range a.Orders {
			for _, p := range o.Products {
				if !seen[p.ID] {
					seen[p.ID] = true
					d.Products = append(d.Products, p)
				}
			}
		}
	}
	return d
}

// DescribeOrder projects o for display.
func DescribeOrder(o models.Order) OrderDetail {
	d := OrderDetail{Order: o, Products: o.Products}
	if o.Account != nil {
		d.Account = o.Account.DisplayName()
	}
	return d
}
