package handlers

import (
	"encoding/csv"
	"fleet-console/internal/domain"
	"fleet-console/internal/platform/obs"
	"fleet-console/internal/services"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func (c *Console) ReportsPage(w http.ResponseWriter, r *http.Request) {
	s := services.NewReportsScreen(c.Reports)
	_ = s.Mount(r.Context())

	render(w, r, http.StatusOK, "reports", pageData{
		Title:  "Reports",
		Path:   "/relatorios",
		Screen: s,
	})
}

// ReportCSV downloads one report as CSV.
func (c *Console) ReportCSV(w http.ResponseWriter, r *http.Request) {
	kind := domain.ReportKind(mux.Vars(r)["kind"])
	if !kind.Valid() {
		writeError(w, r, http.StatusNotFound, "unknown report")
		return
	}

	s := services.NewReportsScreen(c.Reports)
	if err := s.MountKind(r.Context(), kind); err != nil {
		writeError(w, r, http.StatusBadGateway, services.UserMessage(err, "Error fetching report"))
		return
	}
	table, err := s.Table(kind)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "unknown report")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, kind))

	cw := csv.NewWriter(w)
	_ = cw.Write(table.Header)
	if err := cw.WriteAll(table.Rows); err != nil {
		zap.L().Warn("write csv failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("report", string(kind)),
			zap.Error(err),
		)
	}
}
