package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow/identity"
	"github.com/wealthflow/wealthflow/session"
)

type registerCmd struct{}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new user" }
func (*registerCmd) Usage() string {
	return `wealthflow register -email <email> -password <password>

  Registers a new user with the identity provider and initializes an empty
  state document for it.
`
}

func (*registerCmd) SetFlags(f *flag.FlagSet) {}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	email, password, err := credentials()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var provider identity.Client
	user, err := provider.SignUp(ctx, email, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, authMessage(err))
		return subcommands.ExitFailure
	}

	st, closeStore, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	s, err := session.Open(ctx, st, user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing state: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	fmt.Printf("註冊成功，歡迎 %s！\n", s.State().User.Name)
	return subcommands.ExitSuccess
}
