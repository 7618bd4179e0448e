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

func listAccounts(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	fs := newFlagSet("accounts list")
	text := fs.String("filter", "", "case-insensitive match on nickname, names or email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	list := a.AccountList()
	defer list.Close()
	if err := list.Load(ctx); err != nil {
		return err
	}
	list.SetFilter(*text)
	printAccounts(out, list.Items())
	return nil
}

func showAccount(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	id, err := parseWithID(newFlagSet("accounts show"), args)
	if err != nil {
		return err
	}
	list := a.AccountList()
	defer list.Close()
	if err := list.Load(ctx); err != nil {
		return err
	}
	account, ok := list.Find(func(acc models.Account) bool { return acc.ID == id })
	if !ok {
		return fmt.Errorf("account %d not found", id)
	}
	printAccountDetail(out, views.DescribeAccount(account))
	return nil
}

func accountFlags(name string, d *forms.AccountDraft) *flag.FlagSet {
	fs := newFlagSet(name)
	fs.StringVar(&d.Nickname, "nickname", "", "unique nickname")
	fs.StringVar(&d.FirstName, "first", "", "first name")
	fs.StringVar(&d.LastName, "last", "", "last name")
	fs.StringVar(&d.Email, "email", "", "unique email address")
	return fs
}

func createAccount(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	d := &forms.AccountDraft{}
	if err := accountFlags("accounts create", d).Parse(args); err != nil {
		return err
	}
	account, err := a.CreateAccount(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created account %d\n", account.ID)
	return nil
}

func updateAccount(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	var given forms.AccountDraft
	fs := accountFlags("accounts update", &given)
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	current, err := a.Account(ctx, id)
	if err != nil {
		return err
	}
	d := forms.EditAccount(*current)
	set := setFlags(fs)
	if set["nickname"] {
		d.Nickname = given.Nickname
	}
	if set["first"] {
		d.FirstName = given.FirstName
	}
	if set["last"] {
		d.LastName = given.LastName
	}
	if set["email"] {
		d.Email = given.Email
	}
	account, err := a.UpdateAccount(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "updated account %d\n", account.ID)
	return nil
}

func deleteAccount(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	id, err := parseWithID(newFlagSet("accounts delete"), args)
	if err != nil {
		return err
	}
	if err := a.DeleteAccount(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted account %d and its orders\n", id)
	return nil
}
