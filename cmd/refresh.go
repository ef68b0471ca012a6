package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow/renderer"
)

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "refresh stock prices" }
func (*refreshCmd) Usage() string {
	return `wealthflow refresh

  Updates every position's current price with the simulated quote feed
  (±2% random walk) and shows the refreshed portfolio.
`
}

func (*refreshCmd) SetFlags(f *flag.FlagSet) {}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	s.RefreshPrices()
	printMarkdown(renderer.StocksMarkdown(s.State()))
	return subcommands.ExitSuccess
}
