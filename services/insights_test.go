package services

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"airbnb-dashboard/models"
	"airbnb-dashboard/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLoggerWithLevel(io.Discard, "error") }

func newTestDashboard() *Dashboard {
	return NewDashboard(newTestLogger(), sampleListings(), DashboardOptions{CurrencySymbol: "€"})
}

func TestDashboardExplorerDefaults(t *testing.T) {
	d := newTestDashboard()
	v := d.Explorer(d.DefaultFilter())
	if v.Total != 6 || v.Matched != 6 {
		t.Errorf("explorer counts: total %d matched %d", v.Total, v.Matched)
	}
	if len(v.RoomTypes) != 3 {
		t.Errorf("room types: got %d, want 3", len(v.RoomTypes))
	}
	if !reflect.DeepEqual(v.Options.NeighbourhoodGroups, []string{"Centro", "Salamanca"}) {
		t.Errorf("options: got %v", v.Options.NeighbourhoodGroups)
	}
}

func TestDashboardInsightsUsesFilteredSubset(t *testing.T) {
	d := newTestDashboard()
	params := d.DefaultFilter()
	params.NeighbourhoodGroups = []string{"Centro"}

	v := d.Insights(params)
	if v.Matched != 4 {
		t.Errorf("matched: got %d, want 4", v.Matched)
	}
	if len(v.MapPoints) != 3 {
		t.Errorf("map points: got %d, want 3", len(v.MapPoints))
	}
	if v.PriceCap != DefaultPriceCap {
		t.Errorf("price cap: got %.0f", v.PriceCap)
	}
	if len(v.TopHosts) != 2 || v.TopHosts[0].Label != "10 --- Ann" {
		t.Errorf("top hosts: got %+v", v.TopHosts)
	}
}

func TestDashboardInsightsEmptyFilter(t *testing.T) {
	d := newTestDashboard()
	v := d.Insights(models.FilterParams{})
	if v.Matched != 0 || len(v.MapPoints) != 0 || len(v.TopHosts) != 0 || len(v.NeighbourhoodPrices) != 0 {
		t.Errorf("expected empty insights, got %+v", v)
	}
}

func TestDashboardEstimator(t *testing.T) {
	d := newTestDashboard()

	v, err := d.Estimator("Sol", "Entire home/apt", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"Average price per night: 100.00 €",
		"Minimum price per night: 50.00 €",
		"Maximum price per night: 150.00 €",
		"Total cost for 3 nights: 300.00 €",
	}
	if !reflect.DeepEqual(v.Lines, want) {
		t.Errorf("lines: got %q", v.Lines)
	}
}

func TestDashboardEstimatorDefaultsAndNoData(t *testing.T) {
	d := newTestDashboard()

	v, err := d.Estimator("", "", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Neighbourhood != "Sol" || v.RoomType != "Entire home/apt" {
		t.Errorf("defaults: got %q / %q", v.Neighbourhood, v.RoomType)
	}

	v, err = d.Estimator("Palacio", "Shared room", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Estimate.NoData || len(v.Lines) != 1 || v.Lines[0] != NoDataMessage {
		t.Errorf("expected no-data view, got %+v", v)
	}

	if _, err := d.Estimator("Sol", "Entire home/apt", 0); !errors.Is(err, ErrInvalidNights) {
		t.Errorf("expected ErrInvalidNights, got %v", err)
	}
}

func TestDashboardEmptyDataset(t *testing.T) {
	d := NewDashboard(newTestLogger(), []*models.Listing{}, DashboardOptions{CurrencySymbol: "€"})

	opts := d.Options()
	if len(opts.NeighbourhoodGroups)+len(opts.Neighbourhoods)+len(opts.RoomTypes) != 0 {
		t.Errorf("options: got %+v, want none", opts)
	}

	ex := d.Explorer(d.DefaultFilter())
	if ex.Total != 0 || ex.Matched != 0 || len(ex.RoomTypes) != 0 {
		t.Errorf("explorer: got %+v", ex)
	}

	in := d.Insights(d.DefaultFilter())
	if in.Matched != 0 || len(in.MapPoints) != 0 || len(in.NeighbourhoodPrices) != 0 || len(in.TopHosts) != 0 {
		t.Errorf("insights: got %+v", in)
	}

	est, err := d.Estimator("", "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !est.Estimate.NoData || !reflect.DeepEqual(est.Lines, []string{NoDataMessage}) {
		t.Errorf("estimator: got %+v", est)
	}
}

func TestMoneyFormat(t *testing.T) {
	m := NewMoney("en", "€")
	if got := m.Format(1234.5); got != "1,234.50 €" {
		t.Errorf("Format: got %q", got)
	}
	if got := NewMoney("not a locale!", "").Format(99.999); got != "100.00" {
		t.Errorf("Format fallback: got %q", got)
	}
}

func TestReportPrinter(t *testing.T) {
	d := newTestDashboard()
	params := d.DefaultFilter()
	est, err := d.Estimator("Sol", "Entire home/apt", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	NewReportPrinter(&buf, d.Money(), false).Print(d.Summary(), d.Explorer(params), d.Insights(params), est)
	out := buf.String()

	for _, want := range []string{
		"Listings loaded        : 6",
		"Top 4 Hosts by Listings",
		"10 --- Ann",
		"Total cost for 2 nights: 200.00 €",
		"Map points with coordinates: 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("uncolored report should not contain escape codes")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate: got %q", got)
	}
	if got := truncate("a very long neighbourhood", 10); got != "a very ..." {
		t.Errorf("truncate: got %q", got)
	}
}
