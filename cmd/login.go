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

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in and show the dashboard" }
func (*loginCmd) Usage() string {
	return `wealthflow login -email <email> -password <password>

  Verifies the credentials, loads the user's state and shows the dashboard.
`
}

func (*loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	fmt.Printf("登入成功，歡迎回來 %s！\n", s.State().User.Name)
	printMarkdown(renderer.DashboardMarkdown(s.State(), time.Now()))
	return subcommands.ExitSuccess
}
