package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wealthflow/wealthflow"
)

// plain renders a money value as a bare number for the prompt; the template
// spells the currency out itself.
func plain(m wealthflow.Money) string {
	return strconv.FormatFloat(m.AsFloat(), 'f', -1, 64)
}

// BuildContext serializes a financial summary and the user's question into
// the advisory prompt. It is deterministic: the same snapshot and question
// always produce the same prompt, so the advisory call can be reasoned
// about and replayed.
func BuildContext(state wealthflow.AppState, question string) string {
	var b strings.Builder

	b.WriteString("【財務概況】\n")
	fmt.Fprintf(&b, "- 總資產(現金+股票): TWD %s\n", plain(state.NetWorth()))
	fmt.Fprintf(&b, "- 現金餘額: TWD %s\n", plain(state.TotalBalance()))
	fmt.Fprintf(&b, "- 股票市值: TWD %s\n", plain(state.StockValue()))
	fmt.Fprintf(&b, "- 歷史總收入: TWD %s\n", plain(state.IncomeTotal()))
	fmt.Fprintf(&b, "- 歷史總支出: TWD %s\n", plain(state.ExpenseTotal()))

	b.WriteString("\n【持股狀況】\n")
	for _, s := range state.Stocks {
		fmt.Fprintf(&b, "- %s (%s): 持有 %s 股, 現價 %s\n", s.Name, s.Symbol, s.Quantity, plain(s.CurrentPrice))
	}

	b.WriteString("\n【使用者問題】\n")
	b.WriteString(question)
	b.WriteString("\n")

	return b.String()
}
