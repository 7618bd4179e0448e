package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/views"
)

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func printProducts(out io.Writer, products []models.Product) {
	w := table(out)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", p.ID, p.Name, p.Category, p.Price)
	}
	w.Flush()
}

func printAccounts(out io.Writer, accounts []models.Account) {
	w := table(out)
	fmt.Fprintln(w, "ID\tNICKNAME\tNAME\tEMAIL\tORDERS")
	for _, a := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", a.ID, a.Nickname, a.DisplayName(), a.Email, len(a.Orders))
	}
	w.Flush()
}

func printOrders(out io.Writer, orders []models.Order) {
	w := table(out)
	fmt.Fprintln(w, "ID\tDATE\tACCOUNT\tPRODUCTS\tTOTAL")
	for _, o := range orders {
		account := "-"
		if o.Account != nil {
			account = o.Account.DisplayName()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\n", o.ID, formatDate(o.OrderDate), account, len(o.Products), o.TotalPrice)
	}
	w.Flush()
}

func printOrderLines(w io.Writer, lines []views.OrderLine) {
	for _, l := range lines {
		fmt.Fprintf(w, "  #%d\t%s\t%s\t%d products\t%.2f\n", l.ID, formatDate(l.OrderDate), l.Account, l.Products, l.TotalPrice)
	}
}

func printProductDetail(out io.Writer, d views.ProductDetail) {
	w := table(out)
	fmt.Fprintf(w, "Product #%d\n", d.Product.ID)
	fmt.Fprintf(w, "Name:\t%s\n", d.Product.Name)
	fmt.Fprintf(w, "Category:\t%s\n", d.Product.Category)
	fmt.Fprintf(w, "Price:\t%.2f\n", d.Product.Price)
	fmt.Fprintf(w, "Orders:\t%d\n", len(d.Orders))
	printOrderLines(w, d.Orders)
	w.Flush()
}

func printAccountDetail(out io.Writer, d views.AccountDetail) {
	w := table(out)
	fmt.Fprintf(w, "Account #%d\n", d.Account.ID)
	fmt.Fprintf(w, "Nickname:\t%s\n", d.Account.Nickname)
	fmt.Fprintf(w, "Name:\t%s\n", d.Account.DisplayName())
	fmt.Fprintf(w, "Email:\t%s\n", d.Account.Email)
	fmt.Fprintf(w, "Spent:\t%.2f\n", d.Spent)
	fmt.Fprintf(w, "Orders:\t%d\n", len(d.Orders))
	printOrderLines(w, d.Orders)
	fmt.Fprintf(w, "Products:\t%d\n", len(d.Products))
	for _, p := range d.Products {
		fmt.Fprintf(w, "  #%d\t%s\t%.2f\n", p.ID, p.Name, p.Price)
	}
	w.Flush()
}

func printOrderDetail(out io.Writer, d views.OrderDetail) {
	w := table(out)
	fmt.Fprintf(w, "Order #%d\n", d.Order.ID)
	fmt.Fprintf(w, "Date:\t%s\n", formatDate(d.Order.OrderDate))
	fmt.Fprintf(w, "Account:\t%s\n", d.Account)
	fmt.Fprintf(w, "Total:\t%.2f\n", d.Order.TotalPrice)
	fmt.Fprintf(w, "Products:\t%d\n", len(d.Products))
	for _, p := range d.Products {
		fmt.Fprintf(w, "  #%d\t%s\t%.2f\n", p.ID, p.Name, p.Price)
	}
	w.Flush()
}
