package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow"
)

// addTxCmd holds the flags for the 'add-tx' subcommand.
type addTxCmd struct {
	account  string
	date     string
	kind     string
	category string
	note     string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addTxCmd) Usage() string {
	return `wealthflow add-tx -a <account-id> -c <category> [-t <type>] [-d <date>] [-n <note>] <amount>

  Records a transaction and adjusts the account balance in the same step.
  The category must belong to the vocabulary of the transaction type; run
  'wealthflow topic categories' for the lists.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id the transaction belongs to (required).")
	f.StringVar(&c.date, "d", "", "Date of the transaction (2006-01-02). Defaults to now.")
	f.StringVar(&c.kind, "t", "EXPENSE", "Transaction type (INCOME or EXPENSE).")
	f.StringVar(&c.category, "c", "", "Category label (required).")
	f.StringVar(&c.note, "n", "", "Free-form note.")
}

func (c *addTxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount argument.")
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(f.Arg(0)), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	kind, err := wealthflow.ParseTransactionType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var when time.Time
	if c.date != "" {
		when, err = time.Parse("2006-01-02", c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	// The transaction is denominated in its account's currency.
	currency := "TWD"
	state := s.State()
	if a := state.Account(c.account); a != nil {
		currency = a.Balance.Currency()
	}

	err = s.Record(wealthflow.Draft{
		AccountID: c.account,
		Date:      when,
		Amount:    wealthflow.M(amount, currency),
		Type:      kind,
		Category:  c.category,
		Note:      c.note,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	state = s.State()
	account := state.Account(c.account)
	fmt.Printf("Successfully recorded %s %s (%s), balance of %q is now %s\n",
		c.kind, wealthflow.M(amount, currency), c.category, account.Name, account.Balance)
	return subcommands.ExitSuccess
}
