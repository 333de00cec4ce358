package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/staffhub/portal-backend-go/internal/domain/attendance"
	"github.com/staffhub/portal-backend-go/internal/handler/http/response"
	attendanceService "github.com/staffhub/portal-backend-go/internal/service/attendance"
	"github.com/staffhub/portal-backend-go/internal/service/generator"
)

type AttendanceHandler struct {
	attendanceService *attendanceService.Service
	generatorService  *generator.Service
}

func NewAttendanceHandler(
	attendanceSvc *attendanceService.Service,
	generatorSvc *generator.Service,
) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceSvc,
		generatorService:  generatorSvc,
	}
}

// ProcessAutomatic runs the batch generator for the selected employees and
// date range. Existing records in the range are replaced, so the UI must
// confirm with the user before calling this.
func (h *AttendanceHandler) ProcessAutomatic(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req generator.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.generatorService.Process(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance generation completed", resp)
}

// CleanupFuture removes every record dated today or later. Safe to repeat.
func (h *AttendanceHandler) CleanupFuture(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	resp, err := h.generatorService.CleanupFutureAttendance(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Future attendance cleaned up", resp)
}

// List returns a filtered, paginated page of the company's attendance.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	filter := attendance.Filter{
		EmployeeID: queryParam(r, "employee_id"),
		Date:       queryParam(r, "date"),
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		Status:     queryParam(r, "status"),
	}
	if v := r.URL.Query().Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	resp, err := h.attendanceService.List(r.Context(), claims.CompanyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func queryParam(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
