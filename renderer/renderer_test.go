package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/wealthflow/wealthflow"
)

func sampleState(t *testing.T) wealthflow.AppState {
	t.Helper()
	s := wealthflow.NewAppState("ming@example.com")
	s.Accounts = []wealthflow.Account{
		{ID: "a1", Name: "薪轉戶", BankName: "玉山銀行", Type: wealthflow.Checking, Balance: wealthflow.M(25000, "TWD")},
	}
	s.Transactions = []wealthflow.Transaction{
		{ID: "t1", AccountID: "a1", Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), Amount: wealthflow.M(300, "TWD"), Type: wealthflow.Expense, Category: "飲食", Note: "午餐"},
		{ID: "t2", AccountID: "gone", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Amount: wealthflow.M(50000, "TWD"), Type: wealthflow.Income, Category: "薪資"},
	}
	s.Stocks = []wealthflow.Stock{
		{ID: "s1", Symbol: "2330", Name: "台積電", Market: wealthflow.TW, Quantity: wealthflow.Q(10), AvgPrice: wealthflow.M(500, "TWD"), CurrentPrice: wealthflow.M(600, "TWD")},
	}
	return s
}

func contains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in rendered view:\n%s", want, got)
		}
	}
}

func TestDashboardMarkdown(t *testing.T) {
	now := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	got := DashboardMarkdown(sampleState(t), now)

	contains(t, got,
		"ming 的財務總覽",
		"總資產 (現金+股票)",
		"支出分類",
		"飲食",
		"最近交易",
		"2025-01-10",
	)
}

func TestDashboardMarkdown_Empty(t *testing.T) {
	got := DashboardMarkdown(wealthflow.NewAppState("x@y"), time.Now())
	contains(t, got, "暫無數據", "暫無交易紀錄")
}

func TestAccountsMarkdown(t *testing.T) {
	got := AccountsMarkdown(sampleState(t))
	contains(t, got, "我的帳戶", "薪轉戶", "玉山銀行", "總餘額")

	empty := AccountsMarkdown(wealthflow.NewAppState("x@y"))
	contains(t, empty, "尚未新增任何帳戶")
}

func TestTransactionsMarkdown(t *testing.T) {
	s := sampleState(t)
	got := TransactionsMarkdown(s, s.Transactions)

	contains(t, got, "交易紀錄", "支出", "收入", "午餐")

	// The first row resolves to the account name, the orphan keeps its id.
	if !strings.Contains(got, "| 薪轉戶 |") {
		t.Errorf("account name not resolved:\n%s", got)
	}
	if !strings.Contains(got, "| gone |") {
		t.Errorf("orphaned account id not shown raw:\n%s", got)
	}
}

func TestStocksMarkdown(t *testing.T) {
	got := StocksMarkdown(sampleState(t))
	contains(t, got, "股票資產", "2330", "台積電", "+20.00%", "投資組合市值")

	empty := StocksMarkdown(wealthflow.NewAppState("x@y"))
	contains(t, empty, "尚未新增任何持股")
}
