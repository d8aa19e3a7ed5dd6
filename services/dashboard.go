package services

import (
	"airbnb-dashboard/models"
	"airbnb-dashboard/utils"
)

// DashboardOptions tunes the derived views.
type DashboardOptions struct {
	TopHosts       int
	PriceCap       float64
	Locale         string
	CurrencySymbol string
}

// Dashboard computes the explorer, insights and estimator views over an
// immutable listing set. Every call recomputes from scratch, so a Dashboard
// is safe for concurrent use.
type Dashboard struct {
	logger   *utils.Logger
	listings []*models.Listing
	options  models.FilterOptions
	topHosts int
	priceCap float64
	money    *Money
}

// NewDashboard creates a Dashboard over listings.
func NewDashboard(logger *utils.Logger, listings []*models.Listing, opts DashboardOptions) *Dashboard {
	if opts.TopHosts <= 0 {
		opts.TopHosts = DefaultTopHosts
	}
	if opts.PriceCap <= 0 {
		opts.PriceCap = DefaultPriceCap
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	return &Dashboard{
		logger:   logger,
		listings: listings,
		options:  Options(listings),
		topHosts: opts.TopHosts,
		priceCap: opts.PriceCap,
		money:    NewMoney(opts.Locale, opts.CurrencySymbol),
	}
}

// Options returns the selectable filter values.
func (d *Dashboard) Options() models.FilterOptions { return d.options }

// DefaultFilter selects every value of every dimension.
func (d *Dashboard) DefaultFilter() models.FilterParams {
	return models.FilterParams{
		NeighbourhoodGroups: d.options.NeighbourhoodGroups,
		Neighbourhoods:      d.options.Neighbourhoods,
		RoomTypes:           d.options.RoomTypes,
	}
}

// Money returns the display formatter.
func (d *Dashboard) Money() *Money { return d.money }

// Summary describes the loaded dataset.
func (d *Dashboard) Summary() models.DatasetSummary { return Summarize(d.listings) }

// Subset applies params to the dataset.
func (d *Dashboard) Subset(params models.FilterParams) []*models.Listing {
	subset := Filter(d.listings, params)
	d.logger.Debug("[dashboard] Filter kept %d of %d listings", len(subset), len(d.listings))
	return subset
}

// Explorer builds the explorer view for params.
func (d *Dashboard) Explorer(params models.FilterParams) *models.ExplorerView {
	subset := d.Subset(params)
	return &models.ExplorerView{
		Filter:    params,
		Options:   d.options,
		Total:     len(d.listings),
		Matched:   len(subset),
		RoomTypes: GroupByRoomType(subset),
	}
}

// Insights builds the insights view for params.
func (d *Dashboard) Insights(params models.FilterParams) *models.InsightsView {
	subset := d.Subset(params)
	return &models.InsightsView{
		Filter:              params,
		Matched:             len(subset),
		MapPoints:           MapPoints(subset),
		PriceCap:            d.priceCap,
		NeighbourhoodPrices: PriceByNeighbourhood(subset, d.priceCap),
		TopHosts:            RankHosts(subset, d.topHosts),
	}
}

// Estimator builds the estimator view. An empty neighbourhood or room type
// selects the first available option.
func (d *Dashboard) Estimator(neighbourhood, roomType string, nights int) (*models.EstimatorView, error) {
	if neighbourhood == "" && len(d.options.Neighbourhoods) > 0 {
		neighbourhood = d.options.Neighbourhoods[0]
	}
	if roomType == "" && len(d.options.RoomTypes) > 0 {
		roomType = d.options.RoomTypes[0]
	}

	est, err := Estimate(d.listings, neighbourhood, roomType, nights)
	if err != nil {
		return nil, err
	}
	if est.NoData {
		d.logger.Debug("[dashboard] No listings for %q / %q", neighbourhood, roomType)
	}

	return &models.EstimatorView{
		Neighbourhood:  neighbourhood,
		RoomType:       roomType,
		Neighbourhoods: d.options.Neighbourhoods,
		RoomTypes:      d.options.RoomTypes,
		Estimate:       est,
		Lines:          d.money.EstimateLines(est),
	}, nil
}
