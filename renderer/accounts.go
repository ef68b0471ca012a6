package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthflow/wealthflow"
)

// AccountsMarkdown renders the bank account list with the combined balance.
func AccountsMarkdown(s wealthflow.AppState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 我的帳戶\n\n")

	if len(s.Accounts) == 0 {
		fmt.Fprintln(&b, "尚未新增任何帳戶。")
		return b.String()
	}

	fmt.Fprintln(&b, "| 帳戶 | 銀行 | 類型 | 餘額 |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|")
	for _, a := range s.Accounts {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.Name, a.BankName, a.Type, a.Balance)
	}
	fmt.Fprintf(&b, "\n總餘額: %s\n", s.TotalBalance())
	return b.String()
}
