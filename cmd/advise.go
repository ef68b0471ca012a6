package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/wealthflow/wealthflow/advisor"
)

type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor about your finances" }
func (*adviseCmd) Usage() string {
	return `wealthflow advise <question...>

  Sends the question to the AI advisor together with a summary of your
  financial data (totals and holdings, never individual transactions).
`
}

func (*adviseCmd) SetFlags(f *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected a question.")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(advisor.New(client).Advise(ctx, s.State(), question))
	return subcommands.ExitSuccess
}
