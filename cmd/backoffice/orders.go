package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"backoffice/internal/admin"
	"backoffice/internal/forms"
	"backoffice/internal/models"
	"backoffice/internal/views"
)

func listOrders(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	fs := newFlagSet("orders list")
	text := fs.String("filter", "", "case-insensitive match on account or product names")
	accountID := fs.Int64("account", 0, "only orders of this account")
	category := fs.String("category", "", "only orders containing a product of this category")
	price := fs.Float64("price", 0, "only orders containing a product with exactly this price")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter := models.ProductFilter{Category: *category}
	if setFlags(fs)["price"] {
		filter.Price = price
	}

	var list *views.ListView[models.Order]
	switch {
	case *accountID > 0:
		id := *accountID
		list = views.NewOrderList(func(ctx context.Context) ([]models.Order, error) {
			return a.OrdersByAccount(ctx, id)
		})
	case !filter.IsZero():
		list = views.NewOrderList(func(ctx context.Context) ([]models.Order, error) {
			return a.OrdersByProduct(ctx, filter)
		})
	default:
		list = a.OrderList()
	}
	defer list.Close()
	if err := list.Load(ctx); err != nil {
		return err
	}
	list.SetFilter(*text)
	printOrders(out, list.Items())
	return nil
}

func showOrder(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	id, err := parseWithID(newFlagSet("orders show"), args)
	if err != nil {
		return err
	}
	list := a.OrderList()
	defer list.Close()
	if err := list.Load(ctx); err != nil {
		return err
	}
	order, ok := list.Find(func(o models.Order) bool { return o.ID == id })
	if !ok {
		return fmt.Errorf("order %d not found", id)
	}
	printOrderDetail(out, views.DescribeOrder(order))
	return nil
}

type orderFlags struct {
	fs       *flag.FlagSet
	account  int64
	products string
	date     string
}

func newOrderFlags(name string) *orderFlags {
	f := &orderFlags{fs: newFlagSet(name)}
	f.fs.Int64Var(&f.account, "account", 0, "id of the ordering account")
	f.fs.StringVar(&f.products, "products", "", "comma separated product ids")
	f.fs.StringVar(&f.date, "date", "", "order date (RFC 3339), defaults to now")
	return f
}

func parseIDList(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// apply copies the given flags onto d. The product list replaces the selection.
func (f *orderFlags) apply(d *forms.OrderDraft) error {
	set := setFlags(f.fs)
	if set["account"] {
		d.AccountID = f.account
	}
	if set["date"] {
		date, err := time.Parse(time.RFC3339, f.date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", f.date, err)
		}
		d.OrderDate = date
	}
	if set["products"] {
		ids, err := parseIDList(f.products)
		if err != nil {
			return err
		}
		for _, id := range d.Selected() {
			d.Toggle(id)
		}
		for _, id := range ids {
			if !d.IsSelected(id) {
				d.Toggle(id)
			}
		}
	}
	return nil
}

func createOrder(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	f := newOrderFlags("orders create")
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	d, err := a.NewOrderDraft(ctx)
	if err != nil {
		return err
	}
	if err := f.apply(d); err != nil {
		return err
	}
	order, err := a.CreateOrder(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created order %d (total %.2f)\n", order.ID, order.TotalPrice)
	return nil
}

func updateOrder(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	f := newOrderFlags("orders update")
	id, err := parseWithID(f.fs, args)
	if err != nil {
		return err
	}
	d, err := a.EditOrderDraft(ctx, id)
	if err != nil {
		return err
	}
	if err := f.apply(d); err != nil {
		return err
	}
	order, err := a.UpdateOrder(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "updated order %d (total %.2f)\n", order.ID, order.TotalPrice)
	return nil
}

func deleteOrder(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	id, err := parseWithID(newFlagSet("orders delete"), args)
	if err != nil {
		return err
	}
	if err := a.DeleteOrder(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted order %d\n", id)
	return nil
}
