package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/portal-backend-go/internal/domain/change"
	"github.com/staffhub/portal-backend-go/internal/handler/http/response"
	changeService "github.com/staffhub/portal-backend-go/internal/service/change"
)

type ChangeRequestHandler struct {
	changeService *changeService.Service
}

func NewChangeRequestHandler(changeSvc *changeService.Service) *ChangeRequestHandler {
	return &ChangeRequestHandler{changeService: changeSvc}
}

// Submit records a pending change for one personnel field. Non-admin callers
// may only submit changes for themselves.
func (h *ChangeRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req change.SubmitChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if req.EmployeeID == "" {
		req.EmployeeID = claims.EmployeeID
	}
	if !claims.IsAdmin && req.EmployeeID != claims.EmployeeID {
		response.Forbidden(w, "Employees may only request changes to their own profile")
		return
	}

	created, err := h.changeService.Submit(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Change request submitted", changeService.MapToResponse(created))
}

// Approve applies a pending change. Approving twice is harmless.
func (h *ChangeRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	changeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid change request ID", nil)
		return
	}

	if err := h.changeService.Approve(r.Context(), changeID, claims.CompanyID, claims.UserID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Change request approved", nil)
}

// ListMine returns the caller's own change requests, newest first. An admin
// may pass employee_id to read another employee's history.
func (h *ChangeRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	employeeID := claims.EmployeeID
	if v := r.URL.Query().Get("employee_id"); v != "" {
		if !claims.IsAdmin && v != claims.EmployeeID {
			response.Forbidden(w, "Employees may only read their own change requests")
			return
		}
		employeeID = v
	}

	requests, err := h.changeService.ListByEmployee(r.Context(), employeeID, claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapToResponses(requests))
}

// ListCompany returns every change request of the company for the admin
// review queue.
func (h *ChangeRequestHandler) ListCompany(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	requests, err := h.changeService.ListByCompany(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapToResponses(requests))
}

func mapToResponses(requests []change.ChangeRequest) []change.ChangeRequestResponse {
	responses := make([]change.ChangeRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, changeService.MapToResponse(req))
	}
	return responses
}
