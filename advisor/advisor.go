// Package advisor is the generative-text boundary. It seeds Gemini with a
// serialized financial summary and turns any failure into a fixed fallback
// string — an advisory call never crashes a view and never retries.
package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/wealthflow/wealthflow"
)

const model = "gemini-2.5-flash"

// systemInstruction frames the assistant for the advisory chat.
const systemInstruction = `你是「WealthFlow Pro」的智能財務顧問。請根據使用者的財務數據回答問題。
請用繁體中文回答，語氣專業且鼓勵人心。針對投資建議請給予客觀分析，並提醒投資風險。`

// Fallback strings shown when the external call fails or returns nothing.
const (
	adviseFailed    = "連線發生錯誤，請稍後再試。"
	adviseEmpty     = "抱歉，我現在無法分析您的數據。"
	sentimentFailed = "無法取得市場分析"
	sentimentEmpty  = "暫無數據"
)

// Advisor wraps the Gemini client for the two advisory calls.
type Advisor struct {
	client *genai.Client
}

// New returns an Advisor on top of an initialized Gemini client.
func New(client *genai.Client) *Advisor {
	return &Advisor{client: client}
}

// Advise answers the user's question from their financial summary. It
// always returns displayable text; failures degrade to a fixed apology.
func (a *Advisor) Advise(ctx context.Context, state wealthflow.AppState, question string) string {
	prompt := BuildContext(state, question)

	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	})
	if err != nil {
		log.Printf("advisory call failed: %v", err)
		return adviseFailed
	}

	text := responseText(resp)
	if text == "" {
		return adviseEmpty
	}
	return text
}

// Sentiment asks for a short, search-grounded market read on one symbol,
// with source citations appended when grounding metadata is available.
func (a *Advisor) Sentiment(ctx context.Context, symbol string) string {
	prompt := fmt.Sprintf("請簡短分析股票代號 %s 的近期市場情緒與關鍵新聞趨勢（假設你是專業分析師）。請用繁體中文回答，限制在 100 字以內。", symbol)

	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		log.Printf("sentiment call failed for %s: %v", symbol, err)
		return sentimentFailed
	}

	text := responseText(resp)
	if text == "" {
		text = sentimentEmpty
	}
	if sources := citations(resp); len(sources) > 0 {
		text += "\n\n參考來源:\n" + formatCitations(sources)
	}
	return text
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// citations pulls the web source URIs out of the grounding metadata.
func citations(resp *genai.GenerateContentResponse) []string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var uris []string
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk != nil && chunk.Web != nil && chunk.Web.URI != "" {
			uris = append(uris, chunk.Web.URI)
		}
	}
	return uris
}

// formatCitations numbers the sources the way the product displays them.
func formatCitations(uris []string) string {
	lines := make([]string, len(uris))
	for i, uri := range uris {
		lines[i] = fmt.Sprintf("[%d] %s", i+1, uri)
	}
	return strings.Join(lines, "\n")
}
