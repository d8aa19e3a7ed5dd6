package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"slices"

	"airbnb-dashboard/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"contains": func(list []string, v string) bool { return slices.Contains(list, v) },
}

// pageData is the root value every page template receives.
type pageData struct {
	Title  string
	Active string
	Query  template.URL

	Filter  *models.FilterParams
	Options *models.FilterOptions

	Explorer  *models.ExplorerView
	Insights  *models.InsightsView
	Estimator *models.EstimatorView
	Nights    int
	Error     string

	Data template.JS
}

func loadPages(names ...string) (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New("layout").Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("server: parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func mustJSONTemplateJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(b)
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, name string, data *pageData) {
	page, ok := h.pages[name]
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "unknown page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.ExecuteTemplate(w, "layout", data); err != nil {
		h.logger.Error("[http] Template %s failed: %v", name, err)
	}
}
