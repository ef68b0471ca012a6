package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow"
	"github.com/wealthflow/wealthflow/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	kind string
	head int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `wealthflow tx [-t <type>] [-head <n>]

  Lists transactions from the ledger, newest first, with options for
  filtering by type and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "", "Only show this transaction type (INCOME or EXPENSE).")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filter *wealthflow.TransactionType
	if c.kind != "" {
		kind, err := wealthflow.ParseTransactionType(c.kind)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filter = &kind
	}

	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	state := s.State()
	var transactions []wealthflow.Transaction
	for _, tx := range state.Transactions {
		if filter == nil || tx.Type == *filter {
			transactions = append(transactions, tx)
		}
	}
	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}

	printMarkdown(renderer.TransactionsMarkdown(state, transactions))
	return subcommands.ExitSuccess
}
