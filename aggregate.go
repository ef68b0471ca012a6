package wealthflow

import (
	"math"
	"slices"
	"time"
)

// This file is the read side: derived views over an AppState snapshot.
// Everything here is side-effect free and total — empty collections yield
// zero values, never errors.

// TotalBalance returns the sum of all account balances.
//
// Balances are combined numerically regardless of currency. Multi-currency
// conversion is out of scope; callers that mix currencies get a number in
// the first account's currency.
func (s AppState) TotalBalance() Money {
	var total Money
	for _, a := range s.Accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// StockValue returns the market value of the whole portfolio,
// Σ quantity × current price.
func (s AppState) StockValue() Money {
	var total Money
	for _, st := range s.Stocks {
		total = total.Add(st.MarketValue())
	}
	return total
}

// NetWorth returns cash plus stock market value.
func (s AppState) NetWorth() Money {
	return s.TotalBalance().Add(s.StockValue())
}

// IncomeTotal returns the historical sum of all income transactions.
func (s AppState) IncomeTotal() Money { return s.typeTotal(Income) }

// ExpenseTotal returns the historical sum of all expense transactions.
func (s AppState) ExpenseTotal() Money { return s.typeTotal(Expense) }

func (s AppState) typeTotal(t TransactionType) Money {
	var total Money
	for _, tx := range s.Transactions {
		if tx.Type == t {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string
	Total    Money
}

// ExpenseByCategory groups expense transactions by category and sums the
// amounts per group. Groups appear in first-seen order, following the
// ledger, not sorted by label or magnitude.
func (s AppState) ExpenseByCategory() []CategoryTotal {
	var groups []CategoryTotal
	index := make(map[string]int)
	for _, tx := range s.Transactions {
		if tx.Type != Expense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(groups)
			index[tx.Category] = i
			groups = append(groups, CategoryTotal{Category: tx.Category})
		}
		groups[i].Total = groups[i].Total.Add(tx.Amount)
	}
	return groups
}

// recentLimit is how many entries the dashboard's activity feed shows.
const recentLimit = 5

// RecentTransactions returns at most the 5 most recent transactions, newest
// first. The sort is stable: same-timestamp entries keep their ledger order.
func (s AppState) RecentTransactions() []Transaction {
	sorted := slices.Clone(s.Transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

// MonthExpense returns the sum of expense transactions falling in the same
// calendar month as now. Both year and month are compared, so December of
// last year does not leak into this January.
func (s AppState) MonthExpense(now time.Time) Money {
	var total Money
	y, m, _ := now.Date()
	for _, tx := range s.Transactions {
		ty, tm, _ := tx.Date.Date()
		if tx.Type == Expense && ty == y && tm == m {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// MarketValue returns quantity × current price.
func (st Stock) MarketValue() Money { return st.CurrentPrice.Mul(st.Quantity) }

// CostBasis returns quantity × average acquisition price.
func (st Stock) CostBasis() Money { return st.AvgPrice.Mul(st.Quantity) }

// Profit returns market value minus cost basis.
func (st Stock) Profit() Money { return st.MarketValue().Sub(st.CostBasis()) }

// ProfitPercent returns the position's return as a percentage of its cost
// basis. A zero cost basis yields NaN rather than a panic; Percent renders
// it as "-".
func (st Stock) ProfitPercent() Percent {
	basis := st.CostBasis()
	if basis.IsZero() {
		return Percent(math.NaN())
	}
	return Percent(st.Profit().AsFloat() / basis.AsFloat() * 100)
}
