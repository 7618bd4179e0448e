package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"backoffice/internal/admin"
	"backoffice/internal/forms"
	"backoffice/internal/models"
	"backoffice/internal/views"
)

func listProducts(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	fs := newFlagSet("products list")
	category := fs.String("category", "", "only products of this category")
	price := fs.Float64("price", 0, "only products with exactly this price")
	text := fs.String("filter", "", "case-insensitive match on name or category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := models.ProductFilter{Category: *category}
	if setFlags(fs)["price"] {
		filter.Price = price
	}
	list := a.ProductList(filter)
	defer list.Close()
	if err := list.Load(ctx); err != nil {
		return err
	}
	list.SetFilter(*text)
	printProducts(out, list.Items())
	return nil
}

func showProduct(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	id, err := parseWithID(newFlagSet("products show"), args)
	if err != nil {
		return err
	}
	list := a.ProductList(models.ProductFilter{})
	defer list.Close()
	if err := list.Load(ctx); err != nil {
		return err
	}
	p, ok := list.Find(func(p models.Product) bool { return p.ID == id })
	if !ok {
		return fmt.Errorf("product %d not found", id)
	}
	printProductDetail(out, views.DescribeProduct(p))
	return nil
}

func productFlags(name string, d *forms.ProductDraft) *flag.FlagSet {
	fs := newFlagSet(name)
	fs.StringVar(&d.Name, "name", "", "product name")
	fs.Float64Var(&d.Price, "price", 0, "unit price")
	fs.StringVar(&d.Category, "category", "", "category")
	return fs
}

func createProduct(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	d := &forms.ProductDraft{}
	if err := productFlags("products create", d).Parse(args); err != nil {
		return err
	}
	p, err := a.CreateProduct(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created product %d\n", p.ID)
	return nil
}

// updateProduct replaces only the fields given as flags; the others keep their stored values.
func updateProduct(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	var given forms.ProductDraft
	fs := productFlags("products update", &given)
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	current, err := a.Product(ctx, id)
	if err != nil {
		return err
	}
	d := forms.EditProduct(*current)
	set := setFlags(fs)
	if set["name"] {
		d.Name = given.Name
	}
	if set["price"] {
		d.Price = given.Price
	}
	if set["category"] {
		d.Category = given.Category
	}
	p, err := a.UpdateProduct(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "updated product %d\n", p.ID)
	return nil
}

func deleteProduct(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	id, err := parseWithID(newFlagSet("products delete"), args)
	if err != nil {
		return err
	}
	if err := a.DeleteProduct(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted product %d\n", id)
	return nil
}
