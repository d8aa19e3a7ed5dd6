package storage

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"airbnb-dashboard/models"
)

// XLSXSheet is the worksheet name used for exported listings.
const XLSXSheet = "Listings"

// WriteXLSX writes listings as a single-sheet workbook with the listings file
// header. Absent coordinates are left blank.
func WriteXLSX(w io.Writer, listings []*models.Listing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(XLSXSheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: write header: %w", err)
	}

	for i, l := range listings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: cell name: %w", err)
		}
		row := []any{
			l.ID, l.HostID, l.HostName, l.NeighbourhoodGroup, l.Neighbourhood,
			l.RoomType, l.Price, l.NumberOfReviews, optionalCell(l.Latitude), optionalCell(l.Longitude),
		}
		if err := f.SetSheetRow(XLSXSheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx: write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return nil
}

func optionalCell(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
