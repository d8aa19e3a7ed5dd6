package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"airbnb-dashboard/models"
	"airbnb-dashboard/utils"
)

const (
	insertBatchSize = 50
	insertColumns   = 11
)

// PostgresStore keeps a listing set in PostgreSQL. Rows are read back in the
// order they were written.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, waits for it to answer,
// runs schema migrations and returns a ready-to-use PostgresStore.
func NewPostgresStore(ctx context.Context, dsn string, retry *utils.RetryConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do(ctx, "postgres-ping", func(ctx context.Context) error {
		return db.PingContext(ctx)
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS listings (
			position            INTEGER          PRIMARY KEY,
			listing_id          TEXT             NOT NULL,
			host_id             TEXT             NOT NULL DEFAULT '',
			host_name           TEXT             NOT NULL DEFAULT '',
			neighbourhood_group TEXT             NOT NULL DEFAULT '',
			neighbourhood       TEXT             NOT NULL DEFAULT '',
			room_type           TEXT             NOT NULL DEFAULT '',
			price               DOUBLE PRECISION NOT NULL DEFAULT 0,
			number_of_reviews   INTEGER          NOT NULL DEFAULT 0,
			latitude            DOUBLE PRECISION,
			longitude           DOUBLE PRECISION
		);

		CREATE INDEX IF NOT EXISTS idx_listings_neighbourhood ON listings(neighbourhood);
		CREATE INDEX IF NOT EXISTS idx_listings_room_type     ON listings(room_type);
		CREATE INDEX IF NOT EXISTS idx_listings_host          ON listings(host_id);
	`)
	return err
}

// Write replaces the stored listings with listings in one transaction.
func (ps *PostgresStore) Write(ctx context.Context, listings []*models.Listing) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM listings"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	for i := 0; i < len(listings); i += insertBatchSize {
		end := i + insertBatchSize
		if end > len(listings) {
			end = len(listings)
		}
		query, args := buildInsert(listings[i:end], i)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("postgres: insert batch at %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

// buildInsert renders a multi-row INSERT for batch. offset is the position of
// the first row in the full listing set.
func buildInsert(batch []*models.Listing, offset int) (string, []any) {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]any, 0, len(batch)*insertColumns)

	for idx, l := range batch {
		base := idx * insertColumns
		placeholders := make([]string, insertColumns)
		for c := range placeholders {
			placeholders[c] = fmt.Sprintf("$%d", base+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			offset+idx, l.ID, l.HostID, l.HostName, l.NeighbourhoodGroup, l.Neighbourhood,
			l.RoomType, l.Price, l.NumberOfReviews, nullFloat(l.Latitude), nullFloat(l.Longitude))
	}

	query := fmt.Sprintf(`
		INSERT INTO listings (position, listing_id, host_id, host_name, neighbourhood_group,
			neighbourhood, room_type, price, number_of_reviews, latitude, longitude)
		VALUES %s`, strings.Join(valueStrings, ","))
	return query, valueArgs
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// Load retrieves all stored listings in their original order.
func (ps *PostgresStore) Load(ctx context.Context) ([]*models.Listing, error) {
	rows, err := ps.db.QueryContext(ctx, `
		SELECT listing_id, host_id, host_name, neighbourhood_group, neighbourhood,
		       room_type, price, number_of_reviews, latitude, longitude
		FROM listings
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	listings := make([]*models.Listing, 0)
	for rows.Next() {
		l := &models.Listing{}
		var lat, lng sql.NullFloat64
		if err := rows.Scan(
			&l.ID, &l.HostID, &l.HostName, &l.NeighbourhoodGroup, &l.Neighbourhood,
			&l.RoomType, &l.Price, &l.NumberOfReviews, &lat, &lng,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		if lat.Valid {
			l.Latitude = &lat.Float64
		}
		if lng.Valid {
			l.Longitude = &lng.Float64
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
