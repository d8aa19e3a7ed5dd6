package server

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"airbnb-dashboard/models"
	"airbnb-dashboard/services"
	"airbnb-dashboard/storage"
	"airbnb-dashboard/utils"
)

// Handler serves the dashboard pages and the JSON API.
type Handler struct {
	dash   *services.Dashboard
	logger *utils.Logger
	pages  map[string]*template.Template
}

// NewHandler creates a Handler over dash.
func NewHandler(dash *services.Dashboard, logger *utils.Logger) (*Handler, error) {
	pages, err := loadPages("explorer", "insights", "estimator")
	if err != nil {
		return nil, err
	}
	return &Handler{dash: dash, logger: logger, pages: pages}, nil
}

// WriteJSONError sends a JSON body with an "error" field and the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON sends payload as a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func (h *Handler) filter(r *http.Request) models.FilterParams {
	return filterFromQuery(r.URL.Query(), h.dash.DefaultFilter())
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) GetOptions(w http.ResponseWriter, _ *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"options": h.dash.Options(),
		"summary": h.dash.Summary(),
	})
}

func (h *Handler) GetExplorer(w http.ResponseWriter, r *http.Request) {
	view := h.dash.Explorer(h.filter(r))
	filterMatchedRows.Observe(float64(view.Matched))
	RespondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	view := h.dash.Insights(h.filter(r))
	filterMatchedRows.Observe(float64(view.Matched))
	RespondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	view, err := h.estimate(r)
	if errors.Is(err, services.ErrInvalidNights) {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to estimate price")
		return
	}
	RespondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) estimate(r *http.Request) (*models.EstimatorView, error) {
	nights, err := nightsFromQuery(r)
	if err != nil {
		estimatesTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	q := r.URL.Query()
	view, err := h.dash.Estimator(q.Get(paramNeighbourhood), q.Get(paramRoomType), nights)
	if err != nil {
		estimatesTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if view.Estimate.NoData {
		estimatesTotal.WithLabelValues("no_data").Inc()
	} else {
		estimatesTotal.WithLabelValues("data").Inc()
	}
	return view, nil
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	subset := h.dash.Subset(h.filter(r))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="listings.xlsx"`)
	if err := storage.WriteXLSX(w, subset); err != nil {
		h.logger.Error("[http] XLSX export failed: %v", err)
	}
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	subset := h.dash.Subset(h.filter(r))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="listings.csv"`)
	if err := storage.WriteCSV(w, subset); err != nil {
		h.logger.Error("[http] CSV export failed: %v", err)
	}
}

func (h *Handler) ExplorerPage(w http.ResponseWriter, r *http.Request) {
	params := h.filter(r)
	opts := h.dash.Options()
	view := h.dash.Explorer(params)
	filterMatchedRows.Observe(float64(view.Matched))

	h.renderPage(w, http.StatusOK, "explorer", &pageData{
		Title:    "Explore Data",
		Active:   "explorer",
		Query:    template.URL(filterQuery(params)),
		Filter:   &params,
		Options:  &opts,
		Explorer: view,
		Data:     mustJSONTemplateJS(view),
	})
}

func (h *Handler) InsightsPage(w http.ResponseWriter, r *http.Request) {
	params := h.filter(r)
	opts := h.dash.Options()
	view := h.dash.Insights(params)
	filterMatchedRows.Observe(float64(view.Matched))

	h.renderPage(w, http.StatusOK, "insights", &pageData{
		Title:    "In-Depth Insights",
		Active:   "insights",
		Query:    template.URL(filterQuery(params)),
		Filter:   &params,
		Options:  &opts,
		Insights: view,
		Data:     mustJSONTemplateJS(view),
	})
}

func (h *Handler) EstimatorPage(w http.ResponseWriter, r *http.Request) {
	data := &pageData{
		Title:  "Price Estimator",
		Active: "estimator",
		Query:  template.URL(filterQuery(h.dash.DefaultFilter())),
	}

	view, err := h.estimate(r)
	if err != nil {
		// keep the form usable: show the selection without a result
		q := r.URL.Query()
		opts := h.dash.Options()
		data.Error = "Number of nights must be a whole number of at least 1."
		data.Nights = 1
		data.Estimator = &models.EstimatorView{
			Neighbourhood:  q.Get(paramNeighbourhood),
			RoomType:       q.Get(paramRoomType),
			Neighbourhoods: opts.Neighbourhoods,
			RoomTypes:      opts.RoomTypes,
		}
		h.renderPage(w, http.StatusBadRequest, "estimator", data)
		return
	}

	data.Estimator = view
	data.Nights = view.Estimate.Nights
	h.renderPage(w, http.StatusOK, "estimator", data)
}
