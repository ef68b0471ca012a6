package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// rmAccountCmd holds the flags for the 'rm-account' subcommand.
type rmAccountCmd struct {
	force bool
}

func (*rmAccountCmd) Name() string     { return "rm-account" }
func (*rmAccountCmd) Synopsis() string { return "remove a bank account" }
func (*rmAccountCmd) Usage() string {
	return `wealthflow rm-account [-f] <account-id>

  Removes an account from the visible set after confirmation. Its recorded
  transactions are kept; historical totals do not change.
`
}

func (c *rmAccountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Skip the confirmation prompt.")
}

func (c *rmAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one account id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	s, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	state := s.State()
	account := state.Account(id)
	if account == nil {
		fmt.Fprintf(os.Stderr, "Error: no account with id %q.\n", id)
		return subcommands.ExitFailure
	}

	if !c.force {
		fmt.Printf("Remove account %q (%s)? Its transactions are kept. [y/N]: ", account.Name, account.BankName)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(strings.ToLower(line)) != "y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := s.RemoveAccount(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully removed account %q\n", account.Name)
	return subcommands.ExitSuccess
}
