package http

import (
	"net/http"

	"github.com/staffhub/portal-backend-go/internal/handler/http/response"
	"github.com/staffhub/portal-backend-go/internal/pkg/dates"
	statusService "github.com/staffhub/portal-backend-go/internal/service/status"
)

type DashboardHandler struct {
	statusService *statusService.Service
}

func NewDashboardHandler(statusSvc *statusService.Service) *DashboardHandler {
	return &DashboardHandler{statusService: statusSvc}
}

// Status renders the company status board for one day, defaulting to today.
func (h *DashboardHandler) Status(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	date := dates.Today()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := dates.Parse(v)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	resp, err := h.statusService.Summary(r.Context(), claims.CompanyID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
