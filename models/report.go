package models

// BoxStats is the five-number summary behind a box plot.
type BoxStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// RoomTypeSeries keeps every raw review count and price of one room type.
type RoomTypeSeries struct {
	RoomType     string    `json:"room_type"`
	Reviews      []int     `json:"reviews"`
	Prices       []float64 `json:"prices"`
	TotalReviews int       `json:"total_reviews"`
	Price        BoxStats  `json:"price"`
}

// HostRank is one entry of the host ranking.
type HostRank struct {
	HostID   string `json:"host_id"`
	HostName string `json:"host_name"`
	Listings int    `json:"listings"`
	Label    string `json:"label"`
}

// PriceEstimate is the result of a price estimate. When NoData is set no
// listing matched and the numeric fields are zero.
type PriceEstimate struct {
	NoData  bool    `json:"no_data"`
	Matches int     `json:"matches"`
	Nights  int     `json:"nights"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Total   float64 `json:"total"`
}

// MapPoint is a listing with known coordinates.
type MapPoint struct {
	ID            string  `json:"id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Geohash       string  `json:"geohash"`
	Price         float64 `json:"price"`
	RoomType      string  `json:"room_type"`
	Neighbourhood string  `json:"neighbourhood"`
}

// NeighbourhoodPrices is the price distribution of one neighbourhood.
type NeighbourhoodPrices struct {
	Neighbourhood string    `json:"neighbourhood"`
	Prices        []float64 `json:"prices"`
	Price         BoxStats  `json:"price"`
}

// ExplorerView is the data behind the explorer page.
type ExplorerView struct {
	Filter    FilterParams     `json:"filter"`
	Options   FilterOptions    `json:"options"`
	Total     int              `json:"total"`
	Matched   int              `json:"matched"`
	RoomTypes []RoomTypeSeries `json:"room_types"`
}

// InsightsView is the data behind the insights page.
type InsightsView struct {
	Filter              FilterParams          `json:"filter"`
	Matched             int                   `json:"matched"`
	MapPoints           []MapPoint            `json:"map_points"`
	PriceCap            float64               `json:"price_cap"`
	NeighbourhoodPrices []NeighbourhoodPrices `json:"neighbourhood_prices"`
	TopHosts            []HostRank            `json:"top_hosts"`
}

// EstimatorView is the data behind the estimator page.
type EstimatorView struct {
	Neighbourhood  string        `json:"neighbourhood"`
	RoomType       string        `json:"room_type"`
	Neighbourhoods []string      `json:"neighbourhoods"`
	RoomTypes      []string      `json:"room_types"`
	Estimate       PriceEstimate `json:"estimate"`
	Lines          []string      `json:"lines"`
}
