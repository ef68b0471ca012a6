package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/wealthflow/wealthflow/advisor"
)

type sentimentCmd struct{}

func (*sentimentCmd) Name() string     { return "sentiment" }
func (*sentimentCmd) Synopsis() string { return "show a grounded market read on one symbol" }
func (*sentimentCmd) Usage() string {
	return `wealthflow sentiment <symbol>

  Asks for a short market sentiment analysis of the symbol, grounded with
  Google Search; source links are listed under 參考來源.
`
}

func (*sentimentCmd) SetFlags(f *flag.FlagSet) {}

func (c *sentimentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one symbol.")
		return subcommands.ExitUsageError
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(advisor.New(client).Sentiment(ctx, f.Arg(0)))
	return subcommands.ExitSuccess
}
