package services

import (
	"errors"
	"sort"

	"github.com/mmcloughlin/geohash"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"airbnb-dashboard/models"
)

const (
	// DefaultTopHosts is the ranking length used when none is given.
	DefaultTopHosts = 10
	// DefaultPriceCap bounds the prices shown in the neighbourhood chart.
	DefaultPriceCap = 600.0

	mapGeohashPrecision = 7
)

// ErrInvalidNights is returned by Estimate for a non-positive night count.
var ErrInvalidNights = errors.New("nights must be a positive integer")

// GroupByRoomType collects the raw review counts and prices of every room
// type, in first-encounter order.
func GroupByRoomType(listings []*models.Listing) []models.RoomTypeSeries {
	index := make(map[string]int)
	groups := make([]models.RoomTypeSeries, 0)

	for _, l := range listings {
		i, ok := index[l.RoomType]
		if !ok {
			i = len(groups)
			index[l.RoomType] = i
			groups = append(groups, models.RoomTypeSeries{RoomType: l.RoomType})
		}
		g := &groups[i]
		g.Reviews = append(g.Reviews, l.NumberOfReviews)
		g.Prices = append(g.Prices, l.Price)
		g.TotalReviews += l.NumberOfReviews
	}

	for i := range groups {
		groups[i].Price = Box(groups[i].Prices)
	}
	return groups
}

// HostCounts counts listings per (host id, host name) pair, in group
// encounter order.
func HostCounts(listings []*models.Listing) []models.HostRank {
	type hostKey struct{ id, name string }

	index := make(map[hostKey]int)
	hosts := make([]models.HostRank, 0)

	for _, l := range listings {
		k := hostKey{l.HostID, l.HostName}
		i, ok := index[k]
		if !ok {
			i = len(hosts)
			index[k] = i
			hosts = append(hosts, models.HostRank{
				HostID:   l.HostID,
				HostName: l.HostName,
				Label:    l.HostID + " --- " + l.HostName,
			})
		}
		hosts[i].Listings++
	}
	return hosts
}

// RankHosts returns the topN hosts with the most listings. Ties keep their
// encounter order. A non-positive topN means DefaultTopHosts.
func RankHosts(listings []*models.Listing, topN int) []models.HostRank {
	if topN <= 0 {
		topN = DefaultTopHosts
	}

	hosts := HostCounts(listings)
	sort.SliceStable(hosts, func(i, j int) bool {
		return hosts[i].Listings > hosts[j].Listings
	})
	if len(hosts) > topN {
		hosts = hosts[:topN]
	}
	return hosts
}

// Estimate averages the nightly price of listings matching neighbourhood and
// roomType exactly. No match is reported through PriceEstimate.NoData.
func Estimate(listings []*models.Listing, neighbourhood, roomType string, nights int) (models.PriceEstimate, error) {
	if nights <= 0 {
		return models.PriceEstimate{}, ErrInvalidNights
	}

	prices := make([]float64, 0)
	for _, l := range listings {
		if l.Neighbourhood == neighbourhood && l.RoomType == roomType {
			prices = append(prices, l.Price)
		}
	}

	if len(prices) == 0 {
		return models.PriceEstimate{NoData: true, Nights: nights}, nil
	}

	avg := stat.Mean(prices, nil)
	return models.PriceEstimate{
		Matches: len(prices),
		Nights:  nights,
		Average: avg,
		Min:     floats.Min(prices),
		Max:     floats.Max(prices),
		Total:   avg * float64(nights),
	}, nil
}

// MapPoints returns the listings that have both coordinates.
func MapPoints(listings []*models.Listing) []models.MapPoint {
	points := make([]models.MapPoint, 0)
	for _, l := range listings {
		if !l.HasCoordinates() {
			continue
		}
		lat, lng := *l.Latitude, *l.Longitude
		points = append(points, models.MapPoint{
			ID:            l.ID,
			Latitude:      lat,
			Longitude:     lng,
			Geohash:       geohash.EncodeWithPrecision(lat, lng, mapGeohashPrecision),
			Price:         l.Price,
			RoomType:      l.RoomType,
			Neighbourhood: l.Neighbourhood,
		})
	}
	return points
}

// PriceByNeighbourhood groups prices strictly below priceCap by neighbourhood.
func PriceByNeighbourhood(listings []*models.Listing, priceCap float64) []models.NeighbourhoodPrices {
	index := make(map[string]int)
	groups := make([]models.NeighbourhoodPrices, 0)

	for _, l := range listings {
		if l.Price >= priceCap {
			continue
		}
		i, ok := index[l.Neighbourhood]
		if !ok {
			i = len(groups)
			index[l.Neighbourhood] = i
			groups = append(groups, models.NeighbourhoodPrices{Neighbourhood: l.Neighbourhood})
		}
		groups[i].Prices = append(groups[i].Prices, l.Price)
	}

	for i := range groups {
		groups[i].Price = Box(groups[i].Prices)
	}
	return groups
}

// Box computes the five-number summary of values. The input is not modified.
func Box(values []float64) models.BoxStats {
	if len(values) == 0 {
		return models.BoxStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return models.BoxStats{
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
	}
}

// Summarize counts rows and distinct categories.
func Summarize(listings []*models.Listing) models.DatasetSummary {
	opts := Options(listings)
	summary := models.DatasetSummary{
		Listings:            len(listings),
		Hosts:               len(DistinctValues(listings, func(l *models.Listing) string { return l.HostID })),
		NeighbourhoodGroups: len(opts.NeighbourhoodGroups),
		Neighbourhoods:      len(opts.Neighbourhoods),
		RoomTypes:           len(opts.RoomTypes),
	}
	for _, l := range listings {
		if l.HasCoordinates() {
			summary.WithCoordinates++
		}
	}
	return summary
}
