package wealthflow

import (
	"slices"
	"testing"
	"time"
)

func TestTotalBalance(t *testing.T) {
	testCases := []struct {
		name     string
		accounts []Account
		want     Money
	}{
		{
			name: "empty state",
			want: Money{},
		},
		{
			name: "single account",
			accounts: []Account{
				checkingAccount("a1", TWD(1000)),
			},
			want: TWD(1000),
		},
		{
			name: "two accounts",
			accounts: []Account{
				checkingAccount("a1", TWD(500)),
				checkingAccount("a2", TWD(1500)),
			},
			want: TWD(2000),
		},
		{
			name: "negative credit balance",
			accounts: []Account{
				checkingAccount("a1", TWD(500)),
				{ID: "a2", Name: "Card", BankName: "CTBC", Type: Credit, Balance: TWD(-200)},
			},
			want: TWD(300),
		},
		{
			// Multi-currency balances are combined numerically with no
			// conversion. This is the documented limitation, not a defect:
			// the test pins the behavior so a silent "fix" shows up here.
			name: "mixed currencies combine numerically",
			accounts: []Account{
				checkingAccount("a1", TWD(1000)),
				checkingAccount("a2", USD(30)),
			},
			want: TWD(1030),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := AppState{Accounts: tc.accounts}
			if got := state.TotalBalance(); !got.Equal(tc.want) {
				t.Errorf("TotalBalance() = %v, want %v", got, tc.want)
			}

			// Summation is order-independent.
			reversed := slices.Clone(tc.accounts)
			slices.Reverse(reversed)
			state = AppState{Accounts: reversed}
			if got := state.TotalBalance(); !got.value.Equal(tc.want.value) {
				t.Errorf("TotalBalance() reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNetWorth(t *testing.T) {
	state := AppState{
		Accounts: []Account{
			checkingAccount("a1", TWD(500)),
			checkingAccount("a2", TWD(1500)),
		},
	}
	if got := state.NetWorth(); !got.Equal(TWD(2000)) {
		t.Errorf("NetWorth() with no stocks = %v, want %v", got, TWD(2000))
	}

	state.Stocks = []Stock{
		{ID: "s1", Symbol: "2330", Market: TW, Quantity: Q(10), AvgPrice: TWD(100), CurrentPrice: TWD(120)},
	}
	if got := state.StockValue(); !got.Equal(TWD(1200)) {
		t.Errorf("StockValue() = %v, want %v", got, TWD(1200))
	}
	if got := state.NetWorth(); !got.Equal(TWD(3200)) {
		t.Errorf("NetWorth() = %v, want %v", got, TWD(3200))
	}
}

func TestStockProfit(t *testing.T) {
	s := Stock{Symbol: "2330", Quantity: Q(10), AvgPrice: TWD(100), CurrentPrice: TWD(120)}

	if got := s.Profit(); !got.Equal(TWD(200)) {
		t.Errorf("Profit() = %v, want %v", got, TWD(200))
	}
	if got := s.ProfitPercent(); !got.Equal(20.0) {
		t.Errorf("ProfitPercent() = %v, want 20.00%%", got)
	}

	loss := Stock{Symbol: "0050", Quantity: Q(5), AvgPrice: TWD(200), CurrentPrice: TWD(150)}
	if got := loss.Profit(); !got.Equal(TWD(-250)) {
		t.Errorf("Profit() = %v, want %v", got, TWD(-250))
	}
	if got := loss.ProfitPercent(); !got.Equal(-25.0) {
		t.Errorf("ProfitPercent() = %v, want -25.00%%", got)
	}
}

func TestStockProfitPercent_ZeroCostBasis(t *testing.T) {
	// A zero average price must not crash the engine; the return is
	// undefined and renders as "-".
	s := Stock{Symbol: "GIFT", Quantity: Q(10), AvgPrice: TWD(0), CurrentPrice: TWD(50)}
	got := s.ProfitPercent()
	if !got.IsNaN() {
		t.Errorf("ProfitPercent() with zero cost basis = %v, want NaN", got)
	}
	if got.String() != "-" {
		t.Errorf("ProfitPercent().String() = %q, want %q", got.String(), "-")
	}
}

func TestExpenseByCategory(t *testing.T) {
	state := AppState{
		Transactions: []Transaction{
			{ID: "t1", Date: at("2025-03-01"), Amount: TWD(300), Type: Expense, Category: "飲食"},
			{ID: "t2", Date: at("2025-03-02"), Amount: TWD(120), Type: Expense, Category: "交通"},
			{ID: "t3", Date: at("2025-03-03"), Amount: TWD(50000), Type: Income, Category: "薪資"},
			{ID: "t4", Date: at("2025-03-04"), Amount: TWD(200), Type: Expense, Category: "飲食"},
			{ID: "t5", Date: at("2025-03-05"), Amount: TWD(999), Type: Expense, Category: "娛樂"},
		},
	}

	groups := state.ExpenseByCategory()

	// Groups follow first-seen order, not label or magnitude.
	wantOrder := []string{"飲食", "交通", "娛樂"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("ExpenseByCategory() returned %d groups, want %d", len(groups), len(wantOrder))
	}
	for i, want := range wantOrder {
		if groups[i].Category != want {
			t.Errorf("group[%d].Category = %q, want %q", i, groups[i].Category, want)
		}
	}

	if !groups[0].Total.Equal(TWD(500)) {
		t.Errorf("飲食 total = %v, want %v", groups[0].Total, TWD(500))
	}

	// Partition property: group totals sum to the whole expense total.
	var sum Money
	for _, g := range groups {
		sum = sum.Add(g.Total)
	}
	if !sum.Equal(state.ExpenseTotal()) {
		t.Errorf("sum of groups = %v, want ExpenseTotal %v", sum, state.ExpenseTotal())
	}
}

func TestExpenseByCategory_Empty(t *testing.T) {
	var state AppState
	if groups := state.ExpenseByCategory(); len(groups) != 0 {
		t.Errorf("ExpenseByCategory() on empty state = %v, want empty", groups)
	}
}

func TestRecentTransactions(t *testing.T) {
	state := AppState{
		Transactions: []Transaction{
			{ID: "t1", Date: at("2025-03-01")},
			{ID: "t2", Date: at("2025-03-07")},
			{ID: "t3", Date: at("2025-03-03")},
			{ID: "t4", Date: at("2025-03-05")},
			{ID: "t5", Date: at("2025-03-02")},
			{ID: "t6", Date: at("2025-03-06")},
			{ID: "t7", Date: at("2025-03-04")},
		},
	}

	recent := state.RecentTransactions()
	if len(recent) != 5 {
		t.Fatalf("RecentTransactions() returned %d entries, want 5", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i-1].Date.Before(recent[i].Date) {
			t.Errorf("entry %d (%s) is older than entry %d (%s)", i-1, recent[i-1].Date, i, recent[i].Date)
		}
	}
	if recent[0].ID != "t2" {
		t.Errorf("most recent = %q, want t2", recent[0].ID)
	}

	// The snapshot must be untouched by the sort.
	if state.Transactions[0].ID != "t1" {
		t.Errorf("RecentTransactions() reordered the underlying ledger")
	}
}

func TestRecentTransactions_StableTies(t *testing.T) {
	same := at("2025-03-01T12:00:00")
	state := AppState{
		Transactions: []Transaction{
			{ID: "first", Date: same},
			{ID: "second", Date: same},
			{ID: "third", Date: same},
		},
	}
	recent := state.RecentTransactions()
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if recent[i].ID != id {
			t.Errorf("tie order broken: recent[%d] = %q, want %q", i, recent[i].ID, id)
		}
	}
}

func TestMonthExpense(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	state := AppState{
		Transactions: []Transaction{
			{ID: "t1", Date: at("2025-01-03"), Amount: TWD(100), Type: Expense, Category: "飲食"},
			{ID: "t2", Date: at("2025-01-10"), Amount: TWD(250), Type: Expense, Category: "交通"},
			{ID: "t3", Date: at("2025-01-12"), Amount: TWD(5000), Type: Income, Category: "薪資"},
			// Same month number, previous year: must not count.
			{ID: "t4", Date: at("2024-01-20"), Amount: TWD(999), Type: Expense, Category: "娛樂"},
			// Previous month.
			{ID: "t5", Date: at("2024-12-31"), Amount: TWD(777), Type: Expense, Category: "購物"},
		},
	}

	if got := state.MonthExpense(now); !got.Equal(TWD(350)) {
		t.Errorf("MonthExpense() = %v, want %v", got, TWD(350))
	}
}
