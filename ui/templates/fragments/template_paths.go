// Package fragments provides template path constants for the dashboard page
package fragments

// Template names, relative to ui/templates
const (
	Dashboard = "dashboard.html"

	Sidebar     = "fragments/sidebar.html"
	Preview     = "fragments/preview.html"
	DatasetInfo = "fragments/dataset_info.html"
	Missing     = "fragments/missing.html"
	Summary     = "fragments/summary.html"
	Figure      = "fragments/figure.html"
	Insights    = "fragments/insights.html"
)

// Sections lists the section fragments in page order
var Sections = []string{
	Preview,
	DatasetInfo,
	Missing,
	Summary,
	Figure,
	Insights,
}
