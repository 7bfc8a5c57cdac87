package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/wonny/tickerpulse/internal/contracts"
)

// DigestData is the payload rendered into a digest email. One entry
// per analyzed video, in run order.
type DigestData struct {
	Results     []*contracts.AnalysisResult
	GeneratedAt time.Time
}

// HTMLEmailRenderer renders top-pick digests as HTML emails with a
// plain text fallback.
type HTMLEmailRenderer struct {
	tmpl *template.Template
}

// NewHTMLEmailRenderer creates a renderer with the default digest template.
func NewHTMLEmailRenderer() *HTMLEmailRenderer {
	t := template.Must(template.New("digest").Funcs(template.FuncMap{
		"fmtPrice":  fmtPrice,
		"fmtUpside": fmtUpside,
	}).Parse(digestHTMLTemplate))
	return &HTMLEmailRenderer{tmpl: t}
}

// Render produces an HTML digest with a plain text alternative.
func (r *HTMLEmailRenderer) Render(data DigestData) (*RenderedMessage, error) {
	subject := fmt.Sprintf("TickerPulse Digest: %s", data.GeneratedAt.Format("02 Jan 2006"))

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	return &RenderedMessage{
		Subject: subject,
		Text:    renderPlainText(data),
		HTML:    htmlBuf.String(),
	}, nil
}

// renderPlainText produces a readable plain text version for email
// clients that don't support HTML.
func renderPlainText(data DigestData) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("TickerPulse Digest - %s\n", data.GeneratedAt.Format("02 Jan 2006")))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, result := range data.Results {
		sb.WriteString(fmt.Sprintf("Video: https://youtu.be/%s\n", result.VideoID))
		sb.WriteString(strings.Repeat("-", 20) + "\n")

		if !result.HasTickers() {
			sb.WriteString("No tickers mentioned.\n\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("Mentioned: %s\n", strings.Join(result.Tickers, ", ")))

		if !result.HasRatings() {
			sb.WriteString("No analyst ratings resolved.\n\n")
			continue
		}

		sb.WriteString("Top picks:\n")
		for i, pick := range result.TopPicks {
			line := fmt.Sprintf("%d. %s", i+1, pick.Symbol)
			if pick.Name != "" {
				line += fmt.Sprintf(" (%s)", pick.Name)
			}
			line += fmt.Sprintf(" - %s, %d analysts", pick.Label, pick.Analysts)
			if pick.Upside != nil {
				line += fmt.Sprintf(", %+.1f%% upside", *pick.Upside)
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func fmtPrice(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("$%.2f", *p)
}

func fmtUpside(u *float64) string {
	if u == nil {
		return "—"
	}
	return fmt.Sprintf("%+.1f%%", *u)
}
