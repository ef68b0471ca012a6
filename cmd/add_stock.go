package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow"
)

// addStockCmd holds the flags for the 'add-stock' subcommand.
type addStockCmd struct {
	symbol   string
	name     string
	market   string
	quantity float64
	avgPrice float64
}

func (*addStockCmd) Name() string     { return "add-stock" }
func (*addStockCmd) Synopsis() string { return "declare a stock position" }
func (*addStockCmd) Usage() string {
	return `wealthflow add-stock -symbol <symbol> -q <shares> -price <avg_price> [-name <name>] [-market <market>]

  Declares a position. The current price starts at the average price and
  moves with 'wealthflow refresh'. TW positions are priced in TWD, US
  positions in USD.
`
}

func (c *addStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol (required).")
	f.StringVar(&c.name, "name", "", "Display name of the security.")
	f.StringVar(&c.market, "market", "TW", "Market the position trades on (TW or US).")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares.")
	f.Float64Var(&c.avgPrice, "price", 0, "Average acquisition price per share.")
}

func (c *addStockCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := wealthflow.ParseMarket(c.market)
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

	err = s.AddStock(wealthflow.Stock{
		Symbol:   c.symbol,
		Name:     c.name,
		Market:   market,
		Quantity: wealthflow.Q(c.quantity),
		AvgPrice: wealthflow.M(c.avgPrice, market.Currency()),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Successfully added position %s (%s)\n", c.symbol, market)
	return subcommands.ExitSuccess
}
