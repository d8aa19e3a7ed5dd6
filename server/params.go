package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"airbnb-dashboard/models"
	"airbnb-dashboard/services"
)

const (
	paramGroup         = "group"
	paramNeighbourhood = "neighbourhood"
	paramRoomType      = "room_type"
	paramNights        = "nights"
)

// filterFromQuery reads the three filter dimensions. An absent parameter
// allows every value in def; a present one allows only its non-empty values,
// so "?group=" selects no group at all.
func filterFromQuery(q url.Values, def models.FilterParams) models.FilterParams {
	return models.FilterParams{
		NeighbourhoodGroups: allowedValues(q, paramGroup, def.NeighbourhoodGroups),
		Neighbourhoods:      allowedValues(q, paramNeighbourhood, def.Neighbourhoods),
		RoomTypes:           allowedValues(q, paramRoomType, def.RoomTypes),
	}
}

func allowedValues(q url.Values, key string, def []string) []string {
	values, ok := q[key]
	if !ok {
		return def
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// filterQuery encodes params so links keep the current selection.
func filterQuery(params models.FilterParams) string {
	q := url.Values{}
	add := func(key string, values []string) {
		if len(values) == 0 {
			q.Add(key, "")
			return
		}
		for _, v := range values {
			q.Add(key, v)
		}
	}
	add(paramGroup, params.NeighbourhoodGroups)
	add(paramNeighbourhood, params.Neighbourhoods)
	add(paramRoomType, params.RoomTypes)
	return q.Encode()
}

// nightsFromQuery parses the nights parameter, defaulting to 1 when absent.
func nightsFromQuery(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(paramNights))
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, services.ErrInvalidNights
	}
	return n, nil
}
