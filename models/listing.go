package models

// Listing is one row of the listings dataset. Rows are loaded once and never
// modified afterwards.
type Listing struct {
	ID                 string   `json:"id"`
	HostID             string   `json:"host_id"`
	HostName           string   `json:"host_name"`
	NeighbourhoodGroup string   `json:"neighbourhood_group"`
	Neighbourhood      string   `json:"neighbourhood"`
	RoomType           string   `json:"room_type"`
	Price              float64  `json:"price"`
	NumberOfReviews    int      `json:"number_of_reviews"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// FilterParams holds the allowed values for each category dimension.
// A nil or empty slice admits nothing.
type FilterParams struct {
	NeighbourhoodGroups []string `json:"neighbourhood_groups"`
	Neighbourhoods      []string `json:"neighbourhoods"`
	RoomTypes           []string `json:"room_types"`
}

// FilterOptions lists the distinct category values present in the dataset,
// in first-encounter order.
type FilterOptions struct {
	NeighbourhoodGroups []string `json:"neighbourhood_groups"`
	Neighbourhoods      []string `json:"neighbourhoods"`
	RoomTypes           []string `json:"room_types"`
}

// DatasetSummary describes the loaded dataset.
type DatasetSummary struct {
	Listings            int `json:"listings"`
	Hosts               int `json:"hosts"`
	NeighbourhoodGroups int `json:"neighbourhood_groups"`
	Neighbourhoods      int `json:"neighbourhoods"`
	RoomTypes           int `json:"room_types"`
	WithCoordinates     int `json:"with_coordinates"`
}
