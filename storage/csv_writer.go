package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"airbnb-dashboard/models"
)

// WriteCSV writes listings in the same layout ReadListings accepts.
func WriteCSV(w io.Writer, listings []*models.Listing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, l := range listings {
		row := []string{
			l.ID,
			l.HostID,
			l.HostName,
			l.NeighbourhoodGroup,
			l.Neighbourhood,
			l.RoomType,
			strconv.FormatFloat(l.Price, 'f', -1, 64),
			strconv.Itoa(l.NumberOfReviews),
			formatOptional(l.Latitude),
			formatOptional(l.Longitude),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatOptional(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
