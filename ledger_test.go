package wealthflow

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestRecordTransaction_Expense(t *testing.T) {
	state := AppState{Accounts: []Account{checkingAccount("a1", TWD(1000))}}

	next, delta, err := RecordTransaction(state, Draft{
		AccountID: "a1",
		Amount:    TWD(300),
		Type:      Expense,
		Category:  "飲食",
	})
	if err != nil {
		t.Fatalf("RecordTransaction() error = %v", err)
	}

	if got := next.Account("a1").Balance; !got.Equal(TWD(700)) {
		t.Errorf("balance after expense = %v, want %v", got, TWD(700))
	}
	if len(next.Transactions) != 1 {
		t.Fatalf("transaction count = %d, want 1", len(next.Transactions))
	}
	if next.Transactions[0].ID == "" {
		t.Error("recorded transaction has no id")
	}
	if next.Transactions[0].Date.IsZero() {
		t.Error("recorded transaction has no timestamp")
	}

	groups := next.ExpenseByCategory()
	if len(groups) != 1 || groups[0].Category != "飲食" || !groups[0].Total.Equal(TWD(300)) {
		t.Errorf("ExpenseByCategory() = %v, want [{飲食 %v}]", groups, TWD(300))
	}

	if !delta.Accounts || !delta.Transactions || delta.Stocks || delta.User {
		t.Errorf("delta = %+v, want accounts+transactions only", delta)
	}

	// The input snapshot is a value: it must be untouched.
	if got := state.Account("a1").Balance; !got.Equal(TWD(1000)) {
		t.Errorf("input state balance mutated to %v", got)
	}
	if len(state.Transactions) != 0 {
		t.Errorf("input state gained %d transactions", len(state.Transactions))
	}
}

func TestRecordTransaction_Income(t *testing.T) {
	state := AppState{Accounts: []Account{checkingAccount("a1", TWD(1000))}}

	next, _, err := RecordTransaction(state, Draft{
		AccountID: "a1",
		Amount:    TWD(50000),
		Type:      Income,
		Category:  "薪資",
		Note:      "三月薪水",
	})
	if err != nil {
		t.Fatalf("RecordTransaction() error = %v", err)
	}
	if got := next.Account("a1").Balance; !got.Equal(TWD(51000)) {
		t.Errorf("balance after income = %v, want %v", got, TWD(51000))
	}
	if next.Transactions[0].Note != "三月薪水" {
		t.Errorf("note = %q, want 三月薪水", next.Transactions[0].Note)
	}
}

func TestRecordTransaction_PrependsNewestFirst(t *testing.T) {
	state := AppState{Accounts: []Account{checkingAccount("a1", TWD(1000))}}

	state, _, _ = RecordTransaction(state, Draft{AccountID: "a1", Amount: TWD(10), Type: Expense, Category: "飲食", Note: "older"})
	state, _, _ = RecordTransaction(state, Draft{AccountID: "a1", Amount: TWD(20), Type: Expense, Category: "交通", Note: "newer"})

	if state.Transactions[0].Note != "newer" {
		t.Errorf("head of ledger = %q, want the newest entry", state.Transactions[0].Note)
	}
	if got := state.Account("a1").Balance; !got.Equal(TWD(970)) {
		t.Errorf("balance after two expenses = %v, want %v", got, TWD(970))
	}
}

func TestRecordTransaction_Rejections(t *testing.T) {
	base := AppState{Accounts: []Account{checkingAccount("a1", TWD(1000))}}

	testCases := []struct {
		name    string
		draft   Draft
		wantErr error
	}{
		{
			name:    "zero amount",
			draft:   Draft{AccountID: "a1", Amount: TWD(0), Type: Expense, Category: "飲食"},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			draft:   Draft{AccountID: "a1", Amount: TWD(-5), Type: Expense, Category: "飲食"},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "empty category",
			draft:   Draft{AccountID: "a1", Amount: TWD(10), Type: Expense, Category: ""},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "income category on an expense",
			draft:   Draft{AccountID: "a1", Amount: TWD(10), Type: Expense, Category: "薪資"},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "unknown account",
			draft:   Draft{AccountID: "nope", Amount: TWD(10), Type: Expense, Category: "飲食"},
			wantErr: ErrUnknownAccount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, delta, err := RecordTransaction(base, tc.draft)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("RecordTransaction() error = %v, want %v", err, tc.wantErr)
			}
			if !delta.IsZero() {
				t.Errorf("delta = %+v, want zero", delta)
			}
			// A rejection is a no-op: same balances, same ledger length.
			if got := next.Account("a1").Balance; !got.Equal(TWD(1000)) {
				t.Errorf("balance after rejection = %v, want unchanged", got)
			}
			if len(next.Transactions) != 0 {
				t.Errorf("ledger grew to %d after rejection", len(next.Transactions))
			}
		})
	}
}

func TestRecordTransaction_UniqueIDs(t *testing.T) {
	state := AppState{Accounts: []Account{checkingAccount("a1", TWD(100000))}}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		var err error
		state, _, err = RecordTransaction(state, Draft{AccountID: "a1", Amount: TWD(1), Type: Expense, Category: "其他"})
		if err != nil {
			t.Fatalf("RecordTransaction() error = %v", err)
		}
		id := state.Transactions[0].ID
		if seen[id] {
			t.Fatalf("duplicate transaction id %q", id)
		}
		seen[id] = true
	}
}

func TestAddAccount(t *testing.T) {
	var state AppState

	next, delta, err := AddAccount(state, Account{Name: "薪轉戶", BankName: "玉山銀行", Type: Savings, Balance: TWD(10000), Color: "emerald"})
	if err != nil {
		t.Fatalf("AddAccount() error = %v", err)
	}
	if len(next.Accounts) != 1 {
		t.Fatalf("account count = %d, want 1", len(next.Accounts))
	}
	if next.Accounts[0].ID == "" {
		t.Error("added account has no id")
	}
	if !delta.Accounts || delta.Transactions {
		t.Errorf("delta = %+v, want accounts only", delta)
	}

	if _, _, err := AddAccount(state, Account{Name: "", BankName: "玉山銀行"}); err == nil {
		t.Error("AddAccount() with no name should fail")
	}
}

func TestRemoveAccount_SoftOrphaning(t *testing.T) {
	state := AppState{Accounts: []Account{checkingAccount("a1", TWD(1000)), checkingAccount("a2", TWD(500))}}
	state, _, err := RecordTransaction(state, Draft{AccountID: "a1", Amount: TWD(100), Type: Expense, Category: "飲食"})
	if err != nil {
		t.Fatalf("RecordTransaction() error = %v", err)
	}

	next, delta, err := RemoveAccount(state, "a1")
	if err != nil {
		t.Fatalf("RemoveAccount() error = %v", err)
	}
	if next.Account("a1") != nil {
		t.Error("removed account still visible")
	}
	if len(next.Accounts) != 1 {
		t.Errorf("account count = %d, want 1", len(next.Accounts))
	}
	// The referencing transaction survives with its dangling account id.
	if len(next.Transactions) != 1 || next.Transactions[0].AccountID != "a1" {
		t.Errorf("transactions after removal = %v, want the original entry kept", next.Transactions)
	}
	if !delta.Accounts || delta.Transactions {
		t.Errorf("delta = %+v, want accounts only", delta)
	}

	if _, _, err := RemoveAccount(next, "a1"); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("RemoveAccount() twice error = %v, want %v", err, ErrUnknownAccount)
	}
}

func TestAddStock(t *testing.T) {
	var state AppState

	next, delta, err := AddStock(state, Stock{Symbol: "2330", Name: "台積電", Market: TW, Quantity: Q(10), AvgPrice: TWD(600)})
	if err != nil {
		t.Fatalf("AddStock() error = %v", err)
	}
	if len(next.Stocks) != 1 {
		t.Fatalf("stock count = %d, want 1", len(next.Stocks))
	}
	// With no quote yet, the current price starts at the acquisition price.
	if got := next.Stocks[0].CurrentPrice; !got.Equal(TWD(600)) {
		t.Errorf("current price = %v, want %v", got, TWD(600))
	}
	if !delta.Stocks || delta.Accounts {
		t.Errorf("delta = %+v, want stocks only", delta)
	}

	if _, _, err := AddStock(state, Stock{Symbol: ""}); err == nil {
		t.Error("AddStock() with no symbol should fail")
	}
}

func TestRefreshStockPrices(t *testing.T) {
	state := AppState{Stocks: []Stock{
		{ID: "s1", Symbol: "2330", Market: TW, Quantity: Q(10), AvgPrice: TWD(500), CurrentPrice: TWD(600)},
		{ID: "s2", Symbol: "VOO", Market: US, Quantity: Q(3), AvgPrice: USD(400), CurrentPrice: USD(520)},
	}}

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		next, _ := refreshOnce(t, state, r)
		state = next
	}
}

// refreshOnce applies one refresh and checks every price stays within the
// simulator's band: [-2%, +2%) of the previous price, allowing the half-cent
// the 2-decimal rounding can add.
func refreshOnce(t *testing.T, state AppState, r *rand.Rand) (AppState, Delta) {
	t.Helper()
	next, delta := RefreshStockPrices(state, r)
	if !delta.Stocks {
		t.Fatalf("delta = %+v, want stocks", delta)
	}
	for i, st := range next.Stocks {
		old := state.Stocks[i].CurrentPrice.AsFloat()
		got := st.CurrentPrice.AsFloat()
		lo, hi := old*0.98-0.005, old*1.02+0.005
		if got < lo || got >= hi {
			t.Errorf("%s price %v out of [%v, %v)", st.Symbol, got, lo, hi)
		}
		// Prices are quoted to the cent.
		cents := got * 100
		if diff := cents - float64(int64(cents+0.5)); diff > 1e-6 || diff < -1e-6 {
			t.Errorf("%s price %v not rounded to 2 decimals", st.Symbol, got)
		}
	}
	return next, delta
}

func TestRefreshStockPrices_Empty(t *testing.T) {
	var state AppState
	r := rand.New(rand.NewPCG(1, 2))
	_, delta := RefreshStockPrices(state, r)
	if !delta.IsZero() {
		t.Errorf("delta on empty portfolio = %+v, want zero", delta)
	}
}

func TestDeltaFields(t *testing.T) {
	d := Delta{Accounts: true, Transactions: true}
	got := d.Fields()
	want := []string{"accounts", "transactions"}
	if len(got) != len(want) {
		t.Fatalf("Fields() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	u := d.Union(Delta{Stocks: true})
	if !u.Accounts || !u.Transactions || !u.Stocks || u.User {
		t.Errorf("Union() = %+v", u)
	}
}
