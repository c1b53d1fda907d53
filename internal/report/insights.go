package report

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// InsightsMarkdown is the fixed closing notes block
const InsightsMarkdown = `- Dataset has **no missing values**.
- Features like **cp, thalach, oldpeak** strongly correlate with target.
- Some features are categorical (` + "`sex, cp, fbs, restecg, exang, slope, ca, thal`" + `).
- Target distribution is fairly balanced.
`

// RenderInsights converts the insights markdown to HTML. The source is a
// constant, so the result is trusted.
func RenderInsights() template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(InsightsMarkdown), p, r))
}
