package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"airbnb-dashboard/config"
	"airbnb-dashboard/utils"
)

const testCSV = `id,host_id,host_name,neighbourhood_group,neighbourhood,room_type,price,number_of_reviews,latitude,longitude
1,10,Ann,Centro,Sol,Private room,50,3,40.41,-3.70
2,20,Bo,Centro,Sol,Private room,70,0,,
`

func setup(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg = config.FromEnv()
	cfg.DatasetPath = path
	cfg.DataSource = config.SourceCSV
	logger = utils.NewLoggerWithLevel(io.Discard, "error")
}

func TestLoadListingsFromCSV(t *testing.T) {
	setup(t)

	listings, err := loadListings(context.Background())
	if err != nil {
		t.Fatalf("loadListings: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	est, err := newDashboard(listings).Estimator("Sol", "Private room", 2)
	if err != nil {
		t.Fatal(err)
	}
	if est.Estimate.Total != 120 {
		t.Errorf("total: got %v, want 120", est.Estimate.Total)
	}
}

func TestLoadListingsUnknownSource(t *testing.T) {
	setup(t)
	cfg.DataSource = "sqlite"

	if _, err := loadListings(context.Background()); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestLoadListingsMissingFile(t *testing.T) {
	setup(t)
	cfg.DatasetPath = filepath.Join(t.TempDir(), "missing.csv")

	if _, err := loadListings(context.Background()); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}
