package wealthflow

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

// This file is the write side: pure state transitions over AppState. Every
// mutation returns a new state value plus a Delta naming the collections it
// touched; the input state is never modified, so a rejected mutation leaves
// the caller holding exactly what it had.

// Rejection reasons for RecordTransaction. Callers validate forms before
// invoking; these are the boundary's last line.
var (
	ErrNonPositiveAmount = errors.New("transaction amount must be positive")
	ErrUnknownCategory   = errors.New("category is not in the vocabulary for this transaction type")
	ErrUnknownAccount    = errors.New("account is not in the visible account set")
)

// Delta names the top-level collections a mutation touched. It is the unit
// the store merges: named collections are replaced wholesale, the rest of
// the remote document is left alone.
type Delta struct {
	Accounts     bool
	Transactions bool
	Stocks       bool
	User         bool
}

// Union combines two deltas.
func (d Delta) Union(e Delta) Delta {
	return Delta{
		Accounts:     d.Accounts || e.Accounts,
		Transactions: d.Transactions || e.Transactions,
		Stocks:       d.Stocks || e.Stocks,
		User:         d.User || e.User,
	}
}

// IsZero reports whether the delta names no collection at all.
func (d Delta) IsZero() bool { return d == Delta{} }

// Fields returns the touched collections as remote document field names.
func (d Delta) Fields() []string {
	var fields []string
	if d.Accounts {
		fields = append(fields, "accounts")
	}
	if d.Transactions {
		fields = append(fields, "transactions")
	}
	if d.Stocks {
		fields = append(fields, "stocks")
	}
	if d.User {
		fields = append(fields, "user")
	}
	return fields
}

// Draft is a transaction about to be recorded. ID and a zero Date are
// filled in by RecordTransaction.
type Draft struct {
	AccountID string
	Date      time.Time // zero means now
	Amount    Money
	Type      TransactionType
	Category  string
	Note      string
}

// RecordTransaction appends a transaction to the ledger and adjusts the
// referenced account's balance in the same state transition: income adds the
// amount, expense subtracts it. No caller can observe the transaction
// without the balance change or vice versa.
//
// The draft is rejected (state returned unchanged, empty delta) when the
// amount is not positive, the category is not in the vocabulary for the
// draft's type, or the account id is unknown.
func RecordTransaction(state AppState, d Draft) (AppState, Delta, error) {
	if !d.Amount.IsPositive() {
		return state, Delta{}, fmt.Errorf("record transaction: %w (got %s)", ErrNonPositiveAmount, d.Amount)
	}
	if !ValidCategory(d.Type, d.Category) {
		return state, Delta{}, fmt.Errorf("record transaction: %w (%s %q)", ErrUnknownCategory, d.Type, d.Category)
	}
	if state.Account(d.AccountID) == nil {
		return state, Delta{}, fmt.Errorf("record transaction: %w (%q)", ErrUnknownAccount, d.AccountID)
	}

	when := d.Date
	if when.IsZero() {
		when = time.Now()
	}
	tx := Transaction{
		ID:        NewID(),
		AccountID: d.AccountID,
		Date:      when,
		Amount:    d.Amount,
		Type:      d.Type,
		Category:  d.Category,
		Note:      d.Note,
	}

	// Newest first, matching the ledger's display order.
	state.Transactions = append([]Transaction{tx}, state.Transactions...)

	state.Accounts = slices.Clone(state.Accounts)
	acc := state.Account(d.AccountID)
	if d.Type == Income {
		acc.Balance = acc.Balance.Add(d.Amount)
	} else {
		acc.Balance = acc.Balance.Sub(d.Amount)
	}

	return state, Delta{Accounts: true, Transactions: true}, nil
}

// AddAccount appends a new account to the visible set. Name and bank are
// required; the currency defaults to TWD and the id is generated.
func AddAccount(state AppState, draft Account) (AppState, Delta, error) {
	if draft.Name == "" || draft.BankName == "" {
		return state, Delta{}, errors.New("add account: name and bank name are required")
	}
	draft.ID = NewID()
	if draft.Balance.Currency() == "" {
		draft.Balance = M(draft.Balance.AsFloat(), "TWD")
	}
	state.Accounts = append(slices.Clone(state.Accounts), draft)
	return state, Delta{Accounts: true}, nil
}

// RemoveAccount removes the account from the visible set only. Transactions
// referencing it are kept untouched, with their now-dangling account id.
// Asking the user for confirmation is the caller's job.
func RemoveAccount(state AppState, id string) (AppState, Delta, error) {
	i := slices.IndexFunc(state.Accounts, func(a Account) bool { return a.ID == id })
	if i < 0 {
		return state, Delta{}, fmt.Errorf("remove account: %w (%q)", ErrUnknownAccount, id)
	}
	state.Accounts = slices.Delete(slices.Clone(state.Accounts), i, i+1)
	return state, Delta{Accounts: true}, nil
}

// AddStock declares a new position. There is no buy/sell flow: quantity and
// average price are fixed at declaration.
func AddStock(state AppState, draft Stock) (AppState, Delta, error) {
	if draft.Symbol == "" {
		return state, Delta{}, errors.New("add stock: symbol is required")
	}
	if draft.Quantity.IsNegative() {
		return state, Delta{}, errors.New("add stock: quantity must not be negative")
	}
	draft.ID = NewID()
	if draft.CurrentPrice.IsZero() {
		draft.CurrentPrice = draft.AvgPrice
	}
	state.Stocks = append(slices.Clone(state.Stocks), draft)
	return state, Delta{Stocks: true}, nil
}

// RefreshStockPrices replaces every position's current price with
// price × (1 + δ), δ uniform in [-0.02, 0.02), rounded to 2 decimal places.
//
// This is a placeholder market-data simulator, not a real feed. A quote
// provider can replace it behind the same signature without changing
// callers.
func RefreshStockPrices(state AppState, r *rand.Rand) (AppState, Delta) {
	if len(state.Stocks) == 0 {
		return state, Delta{}
	}
	stocks := slices.Clone(state.Stocks)
	for i := range stocks {
		delta := r.Float64()*0.04 - 0.02
		stocks[i].CurrentPrice = stocks[i].CurrentPrice.Mul(Q(1 + delta)).Round(2)
	}
	state.Stocks = stocks
	return state, Delta{Stocks: true}
}
