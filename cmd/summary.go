package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow/renderer"
)

// summaryCmd shows the dashboard: headline figures, expense breakdown and
// recent activity.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the financial overview" }
func (*summaryCmd) Usage() string {
	return `wealthflow summary

  Displays net worth, cash balance, stock value, this month's spending, the
  expense breakdown by category and the most recent transactions.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	printMarkdown(renderer.DashboardMarkdown(s.State(), time.Now()))
	return subcommands.ExitSuccess
}
