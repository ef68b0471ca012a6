package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow"
)

// addAccountCmd holds the flags for the 'add-account' subcommand.
type addAccountCmd struct {
	name     string
	bank     string
	kind     string
	balance  float64
	currency string
	color    string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "add a bank account" }
func (*addAccountCmd) Usage() string {
	return `wealthflow add-account -name <name> -bank <bank> [-type <type>] [-balance <amount>]

  Adds a bank account with an opening balance.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (required).")
	f.StringVar(&c.bank, "bank", "", "Bank name (required).")
	f.StringVar(&c.kind, "type", "Checking", "Account type (Checking, Savings, Credit).")
	f.Float64Var(&c.balance, "balance", 0, "Opening balance.")
	f.StringVar(&c.currency, "currency", "TWD", "Currency of the balance.")
	f.StringVar(&c.color, "color", "", "Color tag for the account.")
}

func (c *addAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := wealthflow.ParseAccountType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	err = s.AddAccount(wealthflow.Account{
		Name:     c.name,
		BankName: c.bank,
		Type:     kind,
		Balance:  wealthflow.M(c.balance, c.currency),
		Color:    c.color,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Successfully added account %q at %s\n", c.name, c.bank)
	return subcommands.ExitSuccess
}
