package services

import (
	"fmt"
	"io"
	"strings"

	"airbnb-dashboard/models"
)

// ReportPrinter renders the dashboard views as a terminal report.
type ReportPrinter struct {
	w     io.Writer
	money *Money
	color bool
}

// NewReportPrinter creates a ReportPrinter writing to w.
func NewReportPrinter(w io.Writer, money *Money, color bool) *ReportPrinter {
	return &ReportPrinter{w: w, money: money, color: color}
}

func (p *ReportPrinter) paint(code, s string) string {
	if !p.color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func (p *ReportPrinter) heading(title string) {
	thin := strings.Repeat("─", 54)
	fmt.Fprintf(p.w, "%s\n", p.paint("1;33", "  "+title))
	fmt.Fprintf(p.w, "  %s\n", thin)
}

// Print writes the summary, explorer, insights and estimator sections.
// est may be nil to skip the estimator section.
func (p *ReportPrinter) Print(summary models.DatasetSummary, explorer *models.ExplorerView,
	insights *models.InsightsView, est *models.EstimatorView) {
	sep := strings.Repeat("═", 54)

	fmt.Fprintf(p.w, "\n%s\n", p.paint("1;35", sep))
	fmt.Fprintf(p.w, "%s\n", p.paint("1;35", "  AIRBNB LISTINGS DASHBOARD"))
	fmt.Fprintf(p.w, "%s\n\n", p.paint("1;35", sep))

	p.heading("Overview")
	fmt.Fprintf(p.w, "  Listings loaded        : %d\n", summary.Listings)
	fmt.Fprintf(p.w, "  Hosts                  : %d\n", summary.Hosts)
	fmt.Fprintf(p.w, "  Neighbourhood groups   : %d\n", summary.NeighbourhoodGroups)
	fmt.Fprintf(p.w, "  Neighbourhoods         : %d\n", summary.Neighbourhoods)
	fmt.Fprintf(p.w, "  Listings matching filter: %d\n\n", explorer.Matched)

	p.heading("Room Types vs. Reviews")
	if len(explorer.RoomTypes) == 0 {
		fmt.Fprintf(p.w, "  No data available\n")
	}
	for _, rt := range explorer.RoomTypes {
		fmt.Fprintf(p.w, "  %-24s reviews %-8d listings %d\n", truncate(rt.RoomType, 24), rt.TotalReviews, rt.Price.Count)
	}
	fmt.Fprintln(p.w)

	p.heading("Room Type Price Distribution")
	for _, rt := range explorer.RoomTypes {
		b := rt.Price
		fmt.Fprintf(p.w, "  %-24s min %s | median %s | max %s\n",
			truncate(rt.RoomType, 24), p.money.Format(b.Min), p.money.Format(b.Median), p.money.Format(b.Max))
	}
	fmt.Fprintln(p.w)

	p.heading(fmt.Sprintf("Neighbourhood Prices (below %.0f)", insights.PriceCap))
	if len(insights.NeighbourhoodPrices) == 0 {
		fmt.Fprintf(p.w, "  No data available\n")
	}
	for _, np := range insights.NeighbourhoodPrices {
		fmt.Fprintf(p.w, "  %-30s median %s (%d)\n",
			truncate(np.Neighbourhood, 28), p.money.Format(np.Price.Median), np.Price.Count)
	}
	fmt.Fprintln(p.w)

	p.heading(fmt.Sprintf("Top %d Hosts by Listings", len(insights.TopHosts)))
	if len(insights.TopHosts) == 0 {
		fmt.Fprintf(p.w, "  No hosts found\n")
	}
	max := 0
	for _, h := range insights.TopHosts {
		if h.Listings > max {
			max = h.Listings
		}
	}
	for i, h := range insights.TopHosts {
		bar := strings.Repeat("█", scaleBar(h.Listings, max, 20))
		fmt.Fprintf(p.w, "  %2d. %-36s %s (%d)\n", i+1, truncate(h.Label, 36), bar, h.Listings)
	}
	fmt.Fprintf(p.w, "\n  Map points with coordinates: %d\n\n", len(insights.MapPoints))

	if est != nil {
		p.heading(fmt.Sprintf("Price Estimate: %s / %s", est.Neighbourhood, est.RoomType))
		for _, line := range est.Lines {
			fmt.Fprintf(p.w, "  %s\n", line)
		}
	}

	fmt.Fprintf(p.w, "\n%s\n\n", p.paint("1;35", sep))
}

func scaleBar(n, max, width int) int {
	if max <= 0 || n <= 0 {
		return 0
	}
	w := n * width / max
	if w == 0 {
		w = 1
	}
	return w
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
