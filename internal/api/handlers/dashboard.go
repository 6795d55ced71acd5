package handlers

import (
	"fleet-console/internal/services"
	"net/http"
)

// DashboardPage renders the overview cards. A failed card degrades on its own,
// so the page is always 200.
func (c *Console) DashboardPage(w http.ResponseWriter, r *http.Request) {
	flash := takeFlash(w, r)

	s := services.NewDashboardScreen(c.Dashboard)
	_ = s.Mount(r.Context())

	render(w, r, http.StatusOK, "dashboard", pageData{
		Title:  "Dashboard",
		Path:   "/",
		Notice: flash,
		Screen: s,
	})
}
