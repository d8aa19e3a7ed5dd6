package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"airbnb-dashboard/models"
)

// Columns is the header of a listings file, in file order.
var Columns = []string{
	"id", "host_id", "host_name", "neighbourhood_group", "neighbourhood",
	"room_type", "price", "number_of_reviews", "latitude", "longitude",
}

var columnTypes = map[string]series.Type{
	"price":             series.Float,
	"number_of_reviews": series.Float,
	"latitude":          series.Float,
	"longitude":         series.Float,
}

// CSVSource reads listings from a comma-separated file with a header row.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSVSource for path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Load reads and parses the whole file.
func (s *CSVSource) Load(_ context.Context) ([]*models.Listing, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", s.Path, err)
	}
	defer f.Close()

	listings, err := ReadListings(f)
	if err != nil {
		return nil, fmt.Errorf("csv: %q: %w", s.Path, err)
	}
	return listings, nil
}

// ReadListings parses listings from r. Extra columns are ignored; a missing
// column, an inconsistent row or a non-numeric price is an error. Empty
// review counts read as zero and empty coordinates as absent. A header with
// no rows is an empty dataset.
func ReadListings(r io.Reader) ([]*models.Listing, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	header, hasRows, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	if !hasRows {
		return []*models.Listing{}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse: %w", df.Err)
	}

	var (
		ids        = df.Col("id").Records()
		hostIDs    = df.Col("host_id").Records()
		hostNames  = df.Col("host_name").Records()
		groups     = df.Col("neighbourhood_group").Records()
		hoods      = df.Col("neighbourhood").Records()
		roomTypes  = df.Col("room_type").Records()
		prices     = df.Col("price").Float()
		reviews    = df.Col("number_of_reviews").Float()
		latitudes  = df.Col("latitude").Float()
		longitudes = df.Col("longitude").Float()
	)

	listings := make([]*models.Listing, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		if math.IsNaN(prices[i]) {
			// header is line 1
			return nil, fmt.Errorf("line %d: price is not a number", i+2)
		}

		l := &models.Listing{
			ID:                 ids[i],
			HostID:             normalizeID(hostIDs[i]),
			HostName:           hostNames[i],
			NeighbourhoodGroup: groups[i],
			Neighbourhood:      hoods[i],
			RoomType:           roomTypes[i],
			Price:              prices[i],
			Latitude:           optional(latitudes[i]),
			Longitude:          optional(longitudes[i]),
		}
		if !math.IsNaN(reviews[i]) {
			l.NumberOfReviews = int(reviews[i])
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// readHeader returns the header record and whether any record follows it.
func readHeader(data []byte) ([]string, bool, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, false, errors.New("empty file: no header row")
	}
	if err != nil {
		return nil, false, fmt.Errorf("header: %w", err)
	}
	_, err = cr.Read()
	return header, !errors.Is(err, io.EOF), nil
}

// normalizeID drops leading zeros from integer ids so "0010" and "10" name
// the same host.
func normalizeID(s string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return s
	}
	return strconv.FormatInt(n, 10)
}

func missingColumns(names []string) []string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	var missing []string
	for _, c := range Columns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

func optional(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}
