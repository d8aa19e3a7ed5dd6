package services

import (
	"airbnb-dashboard/models"
)

// Field selects one category column of a listing.
type Field func(l *models.Listing) string

var (
	FieldNeighbourhoodGroup Field = func(l *models.Listing) string { return l.NeighbourhoodGroup }
	FieldNeighbourhood      Field = func(l *models.Listing) string { return l.Neighbourhood }
	FieldRoomType           Field = func(l *models.Listing) string { return l.RoomType }
)

type valueSet map[string]struct{}

func newValueSet(values []string) valueSet {
	s := make(valueSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s valueSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// Filter returns the listings whose neighbourhood group, neighbourhood and
// room type all belong to the allowed sets in params. The input order is kept
// and the input slice is never modified. An empty allowed set on any dimension
// yields an empty result.
func Filter(listings []*models.Listing, params models.FilterParams) []*models.Listing {
	result := make([]*models.Listing, 0)
	if len(params.NeighbourhoodGroups) == 0 || len(params.Neighbourhoods) == 0 || len(params.RoomTypes) == 0 {
		return result
	}

	groups := newValueSet(params.NeighbourhoodGroups)
	neighbourhoods := newValueSet(params.Neighbourhoods)
	roomTypes := newValueSet(params.RoomTypes)

	for _, l := range listings {
		if groups.has(l.NeighbourhoodGroup) && neighbourhoods.has(l.Neighbourhood) && roomTypes.has(l.RoomType) {
			result = append(result, l)
		}
	}
	return result
}

// DistinctValues returns the distinct values of field in first-encounter order.
func DistinctValues(listings []*models.Listing, field Field) []string {
	seen := make(valueSet)
	values := make([]string, 0)
	for _, l := range listings {
		v := field(l)
		if seen.has(v) {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// Options returns the selectable values of every filter dimension.
func Options(listings []*models.Listing) models.FilterOptions {
	return models.FilterOptions{
		NeighbourhoodGroups: DistinctValues(listings, FieldNeighbourhoodGroup),
		Neighbourhoods:      DistinctValues(listings, FieldNeighbourhood),
		RoomTypes:           DistinctValues(listings, FieldRoomType),
	}
}

// DefaultFilter allows every value present in listings.
func DefaultFilter(listings []*models.Listing) models.FilterParams {
	opts := Options(listings)
	return models.FilterParams{
		NeighbourhoodGroups: opts.NeighbourhoodGroups,
		Neighbourhoods:      opts.Neighbourhoods,
		RoomTypes:           opts.RoomTypes,
	}
}
