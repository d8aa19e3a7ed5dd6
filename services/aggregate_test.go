package services

import (
	"errors"
	"reflect"
	"testing"

	"airbnb-dashboard/models"
)

func TestGroupByRoomType(t *testing.T) {
	groups := GroupByRoomType(sampleListings())
	if len(groups) != 3 {
		t.Fatalf("groups: got %d, want 3", len(groups))
	}

	entire := groups[0]
	if entire.RoomType != "Entire home/apt" {
		t.Errorf("first group: got %q", entire.RoomType)
	}
	if !reflect.DeepEqual(entire.Reviews, []int{10, 5, 0}) {
		t.Errorf("reviews: got %v", entire.Reviews)
	}
	if !reflect.DeepEqual(entire.Prices, []float64{50, 100, 150}) {
		t.Errorf("prices: got %v", entire.Prices)
	}
	if entire.TotalReviews != 15 {
		t.Errorf("total reviews: got %d, want 15", entire.TotalReviews)
	}
	if entire.Price.Min != 50 || entire.Price.Median != 100 || entire.Price.Max != 150 {
		t.Errorf("box stats: got %+v", entire.Price)
	}

	if len(GroupByRoomType(nil)) != 0 {
		t.Error("expected no groups for empty input")
	}
}

func TestRankHostsScenario(t *testing.T) {
	listings := []*models.Listing{
		{HostID: "1", HostName: "Ann"},
		{HostID: "1", HostName: "Ann"},
		{HostID: "2", HostName: "Bo"},
	}

	got := RankHosts(listings, 10)
	want := []models.HostRank{
		{HostID: "1", HostName: "Ann", Listings: 2, Label: "1 --- Ann"},
		{HostID: "2", HostName: "Bo", Listings: 1, Label: "2 --- Bo"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankHosts = %+v; want %+v", got, want)
	}
}

func TestRankHostsStableTiesAndLimit(t *testing.T) {
	listings := []*models.Listing{
		{HostID: "a", HostName: "A"},
		{HostID: "b", HostName: "B"},
		{HostID: "c", HostName: "C"},
		{HostID: "c", HostName: "C"},
		{HostID: "d", HostName: "D"},
	}

	got := RankHosts(listings, 3)
	var labels []string
	for _, h := range got {
		labels = append(labels, h.HostID)
	}
	if !reflect.DeepEqual(labels, []string{"c", "a", "b"}) {
		t.Errorf("ranking order: got %v", labels)
	}
}

func TestRankHostsNameVariantsAreSeparate(t *testing.T) {
	listings := []*models.Listing{
		{HostID: "1", HostName: "Ann"},
		{HostID: "1", HostName: "Anne"},
	}
	if got := RankHosts(listings, 10); len(got) != 2 {
		t.Errorf("expected two entries for differing names, got %+v", got)
	}
}

func TestRankHostsProperties(t *testing.T) {
	all := sampleListings()
	for _, topN := range []int{0, 1, 2, 10} {
		got := RankHosts(all, topN)
		limit := topN
		if limit <= 0 {
			limit = DefaultTopHosts
		}
		if len(got) > limit {
			t.Errorf("topN=%d: got %d entries", topN, len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Listings > got[i-1].Listings {
				t.Errorf("topN=%d: not sorted descending at %d", topN, i)
			}
		}
	}

	sum := 0
	for _, h := range HostCounts(all) {
		sum += h.Listings
	}
	if sum != len(all) {
		t.Errorf("host counts sum: got %d, want %d", sum, len(all))
	}
}

func TestEstimate(t *testing.T) {
	est, err := Estimate(sampleListings(), "Sol", "Entire home/apt", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.NoData {
		t.Fatal("expected data")
	}
	if est.Average != 100 || est.Min != 50 || est.Max != 150 || est.Total != 300 {
		t.Errorf("estimate: got %+v", est)
	}
	if est.Matches != 3 {
		t.Errorf("matches: got %d, want 3", est.Matches)
	}
}

func TestEstimateKeepsUnroundedAverage(t *testing.T) {
	listings := []*models.Listing{
		{Neighbourhood: "X", RoomType: "Y", Price: 10},
		{Neighbourhood: "X", RoomType: "Y", Price: 10},
		{Neighbourhood: "X", RoomType: "Y", Price: 11},
	}
	est, err := Estimate(listings, "X", "Y", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Average == 10.33 {
		t.Error("average should not be rounded")
	}
	if est.Average < 10.333 || est.Average > 10.334 {
		t.Errorf("average: got %v", est.Average)
	}
}

func TestEstimateNoData(t *testing.T) {
	est, err := Estimate(sampleListings(), "X", "Y", 2)
	if err != nil {
		t.Fatalf("no data must not be an error, got %v", err)
	}
	if !est.NoData {
		t.Errorf("expected NoData, got %+v", est)
	}
}

func TestEstimateRejectsNonPositiveNights(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Estimate(sampleListings(), "Sol", "Entire home/apt", n); !errors.Is(err, ErrInvalidNights) {
			t.Errorf("nights=%d: expected ErrInvalidNights, got %v", n, err)
		}
	}
}

func TestMapPointsRequireBothCoordinates(t *testing.T) {
	points := MapPoints(sampleListings())
	var got []string
	for _, p := range points {
		got = append(got, p.ID)
		if len(p.Geohash) != mapGeohashPrecision {
			t.Errorf("point %s: geohash %q has wrong precision", p.ID, p.Geohash)
		}
	}
	if !reflect.DeepEqual(got, []string{"1", "2", "4", "5"}) {
		t.Errorf("map points: got %v", got)
	}
	if points[0].Geohash[:4] != "ezjm" {
		t.Errorf("Madrid geohash prefix: got %q", points[0].Geohash)
	}
}

func TestPriceByNeighbourhoodAppliesCap(t *testing.T) {
	groups := PriceByNeighbourhood(sampleListings(), DefaultPriceCap)
	var names []string
	for _, g := range groups {
		names = append(names, g.Neighbourhood)
	}
	if !reflect.DeepEqual(names, []string{"Sol", "Palacio", "Goya"}) {
		t.Errorf("neighbourhoods: got %v", names)
	}
	goya := groups[2]
	if !reflect.DeepEqual(goya.Prices, []float64{25}) {
		t.Errorf("Goya prices should exclude 700, got %v", goya.Prices)
	}

	if got := PriceByNeighbourhood(sampleListings(), 50); len(got) != 2 {
		t.Errorf("cap is exclusive: got %d groups, want 2", len(got))
	}
}

func TestBoxEmptyAndUnsorted(t *testing.T) {
	if b := Box(nil); b.Count != 0 {
		t.Errorf("empty box: got %+v", b)
	}

	in := []float64{150, 50, 100}
	b := Box(in)
	if b.Min != 50 || b.Q1 != 50 || b.Median != 100 || b.Q3 != 150 || b.Max != 150 || b.Mean != 100 {
		t.Errorf("box: got %+v", b)
	}
	if in[0] != 150 {
		t.Error("Box must not sort its input")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleListings())
	want := models.DatasetSummary{Listings: 6, Hosts: 4, NeighbourhoodGroups: 2, Neighbourhoods: 3, RoomTypes: 3, WithCoordinates: 4}
	if s != want {
		t.Errorf("Summarize = %+v; want %+v", s, want)
	}
}
