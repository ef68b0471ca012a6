package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthflow/wealthflow"
)

// TransactionsMarkdown renders a transaction list. The list is the caller's
// (possibly filtered) selection; account names are resolved from the
// snapshot, falling back to the raw id for orphaned entries.
func TransactionsMarkdown(s wealthflow.AppState, txs []wealthflow.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 交易紀錄\n\n")

	if len(txs) == 0 {
		fmt.Fprintln(&b, "暫無交易紀錄。")
		return b.String()
	}

	fmt.Fprintln(&b, "| 日期 | 類型 | 分類 | 金額 | 帳戶 | 備註 |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|:---|")
	for _, tx := range txs {
		name := tx.AccountID
		if a := s.Account(tx.AccountID); a != nil {
			name = a.Name
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date.Format("2006-01-02"),
			typeLabel(tx.Type),
			tx.Category,
			signedAmount(tx),
			name,
			tx.Note,
		)
	}
	return b.String()
}

func typeLabel(t wealthflow.TransactionType) string {
	if t == wealthflow.Income {
		return "收入"
	}
	return "支出"
}
