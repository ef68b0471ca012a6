// Package cmd implements the CLI application to manage a WealthFlow
// account: bank accounts, transactions, stock positions, and the AI advisor.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthflow/wealthflow/identity"
	"github.com/wealthflow/wealthflow/session"
	"github.com/wealthflow/wealthflow/store"
)

// Commands is the list of subcommands. A main package registers them on a
// Commander and Executes the user-selected one.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&summaryCmd{},
	&accountsCmd{},
	&addAccountCmd{},
	&rmAccountCmd{},
	&txCmd{},
	&addTxCmd{},
	&stocksCmd{},
	&addStockCmd{},
	&refreshCmd{},
	&adviseCmd{},
	&sentimentCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

const (
	projectEnv  = "GOOGLE_CLOUD_PROJECT"
	emailEnv    = "WEALTHFLOW_EMAIL"
	passwordEnv = "WEALTHFLOW_PASSWORD"
)

var projectFlag = flag.String("project", "", "Google Cloud project holding the Firestore database.\n If missing it will read the environment variable \""+projectEnv+"\".")
var emailFlag = flag.String("email", "", "Email address to sign in with.\n If missing it will read the environment variable \""+emailEnv+"\".")
var passwordFlag = flag.String("password", "", "Password to sign in with.\n If missing it will read the environment variable \""+passwordEnv+"\".")

func project() string {
	if *projectFlag == "" {
		*projectFlag = os.Getenv(projectEnv)
	}
	return *projectFlag
}

func credentials() (email, password string, err error) {
	if *emailFlag == "" {
		*emailFlag = os.Getenv(emailEnv)
	}
	if *passwordFlag == "" {
		*passwordFlag = os.Getenv(passwordEnv)
	}
	if *emailFlag == "" || *passwordFlag == "" {
		return "", "", errors.New("missing credentials: set -email and -password (or " + emailEnv + "/" + passwordEnv + ")")
	}
	return *emailFlag, *passwordFlag, nil
}

// openStore selects the remote store. Without a project the state lives in
// memory only and is lost when the process exits.
func openStore(ctx context.Context) (store.Store, func(), error) {
	if project() == "" {
		log.Println("warning, no -project set, state is kept in memory and lost on exit")
		return store.NewMemory(), func() {}, nil
	}
	fs, err := store.NewFirestore(ctx, project())
	if err != nil {
		return nil, nil, err
	}
	return fs, func() { fs.Close() }, nil
}

// openSession signs the user in and loads their state. The returned cleanup
// drains pending writes and releases the store.
func openSession(ctx context.Context) (*session.Session, func(), error) {
	email, password, err := credentials()
	if err != nil {
		return nil, nil, err
	}

	var provider identity.Client
	user, err := provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, nil, errors.New(authMessage(err))
	}

	st, closeStore, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	s, err := session.Open(ctx, st, user)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return s, func() { s.Close(); closeStore() }, nil
}

// authMessage localizes identity failures the way the product displays them.
func authMessage(err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidCredential):
		return "帳號或密碼錯誤"
	case errors.Is(err, identity.ErrEmailInUse):
		return "此電子郵件已被註冊"
	case errors.Is(err, identity.ErrWeakPassword):
		return "密碼強度不足，請至少輸入6位數"
	default:
		return err.Error()
	}
}
