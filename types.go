package wealthflow

import (
	"fmt"
	"strings"
	"time"
)

// AccountType classifies a bank account.
type AccountType int

const (
	Checking AccountType = iota
	Savings
	Credit
)

func (t AccountType) String() string {
	switch t {
	case Checking:
		return "Checking"
	case Savings:
		return "Savings"
	case Credit:
		return "Credit"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "Checking":
		return Checking, nil
	case "Savings":
		return Savings, nil
	case "Credit":
		return Credit, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}

// TransactionType is the direction of a transaction: money in or money out.
type TransactionType int

const (
	Income TransactionType = iota
	Expense
)

func (t TransactionType) String() string {
	switch t {
	case Income:
		return "INCOME"
	case Expense:
		return "EXPENSE"
	default:
		return "unknown"
	}
}

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "INCOME":
		return Income, nil
	case "EXPENSE":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Market tags a stock position as domestic or foreign.
type Market int

const (
	TW Market = iota // domestic (Taiwan exchange)
	US               // foreign (US exchange)
)

func (m Market) String() string {
	switch m {
	case TW:
		return "TW"
	case US:
		return "US"
	default:
		return "unknown"
	}
}

// Currency returns the currency prices on this market are quoted in.
func (m Market) Currency() string {
	if m == US {
		return "USD"
	}
	return "TWD"
}

// ParseMarket parses a string into a Market.
func ParseMarket(s string) (Market, error) {
	switch s {
	case "TW":
		return TW, nil
	case "US":
		return US, nil
	default:
		return 0, fmt.Errorf("unknown market: %q", s)
	}
}

// Account is a bank account. Its balance is only ever mutated through
// RecordTransaction; removing an account does not touch the transactions
// that reference it.
type Account struct {
	ID       string
	Name     string
	BankName string
	Type     AccountType
	Balance  Money
	Color    string
}

// Transaction is a single income or expense entry in the ledger.
// Transactions are immutable once recorded.
type Transaction struct {
	ID        string
	AccountID string // may reference a removed account
	Date      time.Time
	Amount    Money // always positive, the sign lives in Type
	Type      TransactionType
	Category  string
	Note      string
}

// Stock is a position in the portfolio. Quantity and AvgPrice are fixed at
// declaration; only CurrentPrice moves, via RefreshStockPrices.
type Stock struct {
	ID           string
	Symbol       string
	Name         string
	Market       Market
	Quantity     Quantity
	AvgPrice     Money
	CurrentPrice Money
}

// Profile identifies the owner of an AppState.
type Profile struct {
	Name  string
	Email string
}

// AppState is the aggregate root: one user's profile and collections.
// It is a value; mutations return a new AppState rather than editing in
// place, so a snapshot handed to a view can never change under it.
type AppState struct {
	User         Profile
	Accounts     []Account
	Transactions []Transaction
	Stocks       []Stock
}

// NewAppState returns a fresh, empty state for a newly registered user.
// The display name defaults to the local part of the email address.
func NewAppState(email string) AppState {
	name, _, _ := strings.Cut(email, "@")
	return AppState{
		User:         Profile{Name: name, Email: email},
		Accounts:     []Account{},
		Transactions: []Transaction{},
		Stocks:       []Stock{},
	}
}

// Account returns the account with the given id, or nil if it is not in the
// visible set (removed accounts are not found).
func (s *AppState) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// Stock returns the position with the given id, or nil.
func (s *AppState) Stock(id string) *Stock {
	for i := range s.Stocks {
		if s.Stocks[i].ID == id {
			return &s.Stocks[i]
		}
	}
	return nil
}
