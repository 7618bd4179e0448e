// Command backoffice manages products, accounts and orders through the REST API.
//
//	backoffice products list -category Tools -filter widget
//	backoffice orders create -account 3 -products 1,2
//	backoffice accounts delete 7
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/viper"

	"backoffice/internal/admin"
	"backoffice/internal/cache"
	"backoffice/internal/client"
	"backoffice/internal/config"
	"backoffice/internal/forms"
)

const usage = `usage: backoffice <products|accounts|orders> <list|show|create|update|delete> [flags] [id]`

var errUsage = errors.New(usage)

func main() {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	os.Exit(execute(cfg, os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs one command and returns the process exit code.
// The cache and the signal handler are released before it returns.
func execute(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	c := cache.New(cfg.FetchTimeout)
	defer c.Close()
	a := admin.New(client.New(cfg.APIURL, cfg.RequestTimeout), c)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, a, args, stdout); err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}
	return 0
}

// describe renders an error for the terminal, listing the offending fields of a validation failure.
func describe(err error) string {
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		msg := "invalid " + verr.Entity + ":"
		for field, problem := range verr.Fields {
			msg += "\n  " + field + ": " + problem
		}
		return msg
	}
	return err.Error()
}

type command func(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error

var commands = map[string]map[string]command{
	"products": {
		"list":   listProducts,
		"show":   showProduct,
		"create": createProduct,
		"update": updateProduct,
		"delete": deleteProduct,
	},
	"accounts": {
		"list":   listAccounts,
		"show":   showAccount,
		"create": createAccount,
		"update": updateAccount,
		"delete": deleteAccount,
	},
	"orders": {
		"list":   listOrders,
		"show":   showOrder,
		"create": createOrder,
		"update": updateOrder,
		"delete": deleteOrder,
	},
}

func run(ctx context.Context, a *admin.Admin, args []string, out io.Writer) error {
	if len(args) < 2 {
		return errUsage
	}
	verbs, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown resource %q\n%s", args[0], usage)
	}
	cmd, ok := verbs[args[1]]
	if !ok {
		return fmt.Errorf("unknown command %q\n%s", args[1], usage)
	}
	return cmd(ctx, a, args[2:], out)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseWithID parses flags that may come before or after a positional id.
func parseWithID(fs *flag.FlagSet, args []string) (int64, error) {
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		id, err := parseID(args[0])
		if err != nil {
			return 0, err
		}
		return id, fs.Parse(args[1:])
	}
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if fs.NArg() != 1 {
		return 0, fmt.Errorf("%s: exactly one id is required", fs.Name())
	}
	return parseID(fs.Arg(0))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
