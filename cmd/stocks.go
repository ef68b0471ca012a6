package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow/renderer"
)

type stocksCmd struct{}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list stock positions" }
func (*stocksCmd) Usage() string {
	return `wealthflow stocks

  Lists the portfolio with per-position market value, profit and return.
`
}

func (*stocksCmd) SetFlags(f *flag.FlagSet) {}

func (c *stocksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	printMarkdown(renderer.StocksMarkdown(s.State()))
	return subcommands.ExitSuccess
}
