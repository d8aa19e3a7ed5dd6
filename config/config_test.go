package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATASET_PATH", "")
	t.Setenv("TOP_HOSTS", "")
	t.Setenv("INSIGHTS_PRICE_CAP", "")

	cfg := FromEnv()
	if cfg.DatasetPath != "airbnb.csv" {
		t.Errorf("DatasetPath: got %q, want airbnb.csv", cfg.DatasetPath)
	}
	if cfg.TopHosts != 10 {
		t.Errorf("TopHosts: got %d, want 10", cfg.TopHosts)
	}
	if cfg.InsightsPriceCap != 600 {
		t.Errorf("InsightsPriceCap: got %.2f, want 600", cfg.InsightsPriceCap)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", SourcePostgres)
	t.Setenv("TOP_HOSTS", "5")
	t.Setenv("INSIGHTS_PRICE_CAP", "450.5")
	t.Setenv("MAX_RETRIES", "not-a-number")

	cfg := FromEnv()
	if cfg.DataSource != SourcePostgres {
		t.Errorf("DataSource: got %q", cfg.DataSource)
	}
	if cfg.TopHosts != 5 {
		t.Errorf("TopHosts: got %d, want 5", cfg.TopHosts)
	}
	if cfg.InsightsPriceCap != 450.5 {
		t.Errorf("InsightsPriceCap: got %.2f, want 450.5", cfg.InsightsPriceCap)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries should fall back to 3 on parse error, got %d", cfg.MaxRetries)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "d", PostgresSSLMode: "disable",
	}
	want := "host=db port=5433 user=u password=p dbname=d sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}
