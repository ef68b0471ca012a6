package wealthflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// The remote store keeps one document per user with four top-level fields:
// user, accounts, transactions, stocks. This file is the codec between that
// document shape and AppState. Field order is fixed by jsonObjectWriter so
// encoded documents are diffable.

// Amounts are stored as JSON numbers, not strings.
func init() { decimal.MarshalJSONWithoutQuotes = true }

// MarshalJSON implements the json.Marshaler interface for Profile.
func (p Profile) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Append("email", p.Email)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Account.
// The balance is a plain number with the currency as a sibling field, the
// shape the original documents use.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("bankName", a.BankName)
	w.Append("type", a.Type.String())
	w.Append("balance", a.Balance.value)
	w.Append("currency", a.Balance.Currency())
	w.Optional("color", a.Color)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("accountId", t.AccountID)
	w.Append("date", t.Date.Format(time.RFC3339))
	w.Append("amount", t.Amount.value)
	w.Append("type", t.Type.String())
	w.Append("category", t.Category)
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Stock.
// Prices are plain numbers; the currency is implied by the market tag.
func (s Stock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("symbol", s.Symbol)
	w.Append("name", s.Name)
	w.Append("market", s.Market.String())
	w.Append("quantity", s.Quantity)
	w.Append("avgPrice", s.AvgPrice.value)
	w.Append("currentPrice", s.CurrentPrice.value)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for AppState.
func (s AppState) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("user", s.User)
	w.Append("accounts", s.Accounts)
	w.Append("transactions", s.Transactions)
	w.Append("stocks", s.Stocks)
	return w.MarshalJSON()
}

// EncodeState writes the state's document form to w.
func EncodeState(w io.Writer, s AppState) error {
	enc := json.NewEncoder(w)
	return enc.Encode(s)
}

// wire-side shadows for decoding.

type accountDoc struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	BankName string          `json:"bankName"`
	Type     string          `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Color    string          `json:"color"`
}

type transactionDoc struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountId"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Note      string          `json:"note"`
}

type stockDoc struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Market       string          `json:"market"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

type stateDoc struct {
	User         Profile          `json:"user"`
	Accounts     []accountDoc     `json:"accounts"`
	Transactions []transactionDoc `json:"transactions"`
	Stocks       []stockDoc       `json:"stocks"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Profile.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var doc struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	p.Name, p.Email = doc.Name, doc.Email
	return nil
}

// DecodeState reads a state document from r.
func DecodeState(r io.Reader) (AppState, error) {
	var doc stateDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return AppState{}, fmt.Errorf("could not decode state document: %w", err)
	}

	state := AppState{
		User:         doc.User,
		Accounts:     make([]Account, 0, len(doc.Accounts)),
		Transactions: make([]Transaction, 0, len(doc.Transactions)),
		Stocks:       make([]Stock, 0, len(doc.Stocks)),
	}

	for _, a := range doc.Accounts {
		kind, err := ParseAccountType(a.Type)
		if err != nil {
			return AppState{}, fmt.Errorf("account %q: %w", a.ID, err)
		}
		state.Accounts = append(state.Accounts, Account{
			ID:       a.ID,
			Name:     a.Name,
			BankName: a.BankName,
			Type:     kind,
			Balance:  M(a.Balance, a.Currency),
			Color:    a.Color,
		})
	}

	// Transactions carry no currency of their own; they are denominated in
	// their account's currency. Orphaned ones fall back to TWD.
	currencies := make(map[string]string, len(state.Accounts))
	for _, a := range state.Accounts {
		currencies[a.ID] = a.Balance.Currency()
	}

	for _, t := range doc.Transactions {
		kind, err := ParseTransactionType(t.Type)
		if err != nil {
			return AppState{}, fmt.Errorf("transaction %q: %w", t.ID, err)
		}
		cur, ok := currencies[t.AccountID]
		if !ok {
			cur = "TWD"
		}
		state.Transactions = append(state.Transactions, Transaction{
			ID:        t.ID,
			AccountID: t.AccountID,
			Date:      t.Date,
			Amount:    M(t.Amount, cur),
			Type:      kind,
			Category:  t.Category,
			Note:      t.Note,
		})
	}

	for _, s := range doc.Stocks {
		market, err := ParseMarket(s.Market)
		if err != nil {
			return AppState{}, fmt.Errorf("stock %q: %w", s.ID, err)
		}
		cur := market.Currency()
		state.Stocks = append(state.Stocks, Stock{
			ID:           s.ID,
			Symbol:       s.Symbol,
			Name:         s.Name,
			Market:       market,
			Quantity:     Q(s.Quantity),
			AvgPrice:     M(s.AvgPrice, cur),
			CurrentPrice: M(s.CurrentPrice, cur),
		})
	}

	return state, nil
}

// Document returns the state in the remote store's document form, as nested
// maps and slices ready for a merge write.
func (s AppState) Document() (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// StateFromDocument rebuilds an AppState from the remote store's document
// form.
func StateFromDocument(doc map[string]any) (AppState, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return AppState{}, err
	}
	return DecodeState(bytes.NewReader(raw))
}
