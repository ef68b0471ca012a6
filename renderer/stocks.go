package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthflow/wealthflow"
)

// StocksMarkdown renders the portfolio with per-position profit and return.
func StocksMarkdown(s wealthflow.AppState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 股票資產\n\n")

	if len(s.Stocks) == 0 {
		fmt.Fprintln(&b, "尚未新增任何持股。")
		return b.String()
	}

	fmt.Fprintln(&b, "| 代號 | 名稱 | 市場 | 股數 | 均價 | 現價 | 市值 | 損益 | 報酬率 |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|---:|")
	for _, st := range s.Stocks {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			st.Symbol,
			st.Name,
			st.Market,
			st.Quantity,
			st.AvgPrice,
			st.CurrentPrice,
			st.MarketValue(),
			st.Profit().SignedString(),
			st.ProfitPercent().SignedString(),
		)
	}
	fmt.Fprintf(&b, "\n投資組合市值: %s\n", s.StockValue())
	return b.String()
}
