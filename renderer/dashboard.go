// Package renderer turns AppState snapshots into markdown views for the
// terminal. It only reads: every view is a pure function of the snapshot.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/wealthflow/wealthflow"
)

// DashboardMarkdown renders the overview page: headline figures, the expense
// breakdown and the most recent movements.
func DashboardMarkdown(s wealthflow.AppState, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s 的財務總覽", s.User.Name))

	doc.Table(md.TableSet{
		Header: []string{"指標", "金額"},
		Rows: [][]string{
			{"總資產 (現金+股票)", s.NetWorth().String()},
			{"帳戶餘額", s.TotalBalance().String()},
			{"股票市值", s.StockValue().String()},
			{"本月支出", s.MonthExpense(now).String()},
		},
	})

	doc.H2("支出分類")
	breakdown := s.ExpenseByCategory()
	if len(breakdown) == 0 {
		doc.PlainText("暫無數據")
	} else {
		rows := make([][]string, len(breakdown))
		for i, g := range breakdown {
			rows[i] = []string{g.Category, g.Total.String()}
		}
		doc.Table(md.TableSet{Header: []string{"分類", "金額"}, Rows: rows})
	}

	doc.H2("最近交易")
	recent := s.RecentTransactions()
	if len(recent) == 0 {
		doc.PlainText("暫無交易紀錄")
	} else {
		rows := make([][]string, len(recent))
		for i, tx := range recent {
			rows[i] = []string{
				tx.Date.Format("2006-01-02"),
				tx.Category,
				signedAmount(tx),
				tx.Note,
			}
		}
		doc.Table(md.TableSet{Header: []string{"日期", "分類", "金額", "備註"}, Rows: rows})
	}

	return doc.String()
}

// signedAmount renders a transaction amount with its direction, the way the
// activity feed displays it.
func signedAmount(tx wealthflow.Transaction) string {
	if tx.Type == wealthflow.Expense {
		return "-" + tx.Amount.String()
	}
	return "+" + tx.Amount.String()
}
