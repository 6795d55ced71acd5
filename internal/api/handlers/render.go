package handlers

import (
	"bytes"
	"embed"
	"fleet-console/internal/domain"
	"fleet-console/internal/platform/obs"
	"fleet-console/internal/services"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

type navItem struct {
	Path  string
	Label string
}

var nav = []navItem{
	{Path: "/", Label: "Dashboard"},
	{Path: "/frota", Label: "Fleet"},
	{Path: "/entregas", Label: "Deliveries"},
	{Path: "/motoristas", Label: "Drivers"},
	{Path: "/relatorios", Label: "Reports"},
	{Path: "/configuracoes", Label: "Settings"},
}

type pageData struct {
	Title  string
	Path   string
	Nav    []navItem
	Notice services.Notice
	Screen any
}

var funcs = template.FuncMap{
	"truckStatuses":    func() []string { return domain.TruckStatuses },
	"driverStatuses":   func() []string { return domain.DriverStatuses },
	"deliveryStatuses": func() []string { return domain.DeliveryStatuses },
	"permissions":      func() []string { return domain.Permissions },
	"join":             strings.Join,
	"refIs":            domain.Ref.Is,
	"tagClass": func(tag string) string {
		return "tag-" + strings.ReplaceAll(strings.ToLower(tag), " ", "-")
	},
}

var pages = parsePages("dashboard", "fleet", "drivers", "deliveries", "settings", "reports")

func parsePages(names ...string) map[string]*template.Template {
	layout := template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html"))

	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t := template.Must(layout.Clone())
		out[name] = template.Must(t.ParseFS(templateFS, "templates/"+name+".html"))
	}
	return out
}

// render executes a page into a buffer first so a template error still
// yields a clean 500.
func render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	data.Nav = nav

	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		zap.L().Error("render failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("page", page),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
