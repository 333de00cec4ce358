package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/portal-backend-go/internal/handler/http/response"
	changeService "github.com/staffhub/portal-backend-go/internal/service/change"
	employeeService "github.com/staffhub/portal-backend-go/internal/service/employee"
)

type EmployeeHandler struct {
	employeeService *employeeService.Service
	changeService   *changeService.Service
}

func NewEmployeeHandler(
	employeeSvc *employeeService.Service,
	changeSvc *changeService.Service,
) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeSvc,
		changeService:   changeSvc,
	}
}

type employeeResponse struct {
	ID               string  `json:"id"`
	FullName         string  `json:"full_name"`
	EmploymentStatus string  `json:"employment_status"`
	AttendanceMode   string  `json:"attendance_mode"`
	WorkStartTime    string  `json:"work_start_time"`
	WorkEndTime      string  `json:"work_end_time"`
	WeeklyHours      float64 `json:"weekly_hours"`
}

// List returns the company's employee directory.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	employees, err := h.employeeService.GetEmployees(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employeeResponse{
			ID:               emp.ID,
			FullName:         emp.FullName,
			EmploymentStatus: string(emp.EmploymentStatus),
			AttendanceMode:   string(emp.AttendanceMode),
			WorkStartTime:    emp.WorkStartTime,
			WorkEndTime:      emp.WorkEndTime,
			WeeklyHours:      emp.WeeklyHours,
		})
	}
	response.Success(w, responses)
}

// ListAutomatic returns the employees eligible as generator input.
func (h *EmployeeHandler) ListAutomatic(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	employees, err := h.employeeService.GetEmployeesWithAutomaticAttendance(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employeeResponse{
			ID:               emp.ID,
			FullName:         emp.FullName,
			EmploymentStatus: string(emp.EmploymentStatus),
			AttendanceMode:   string(emp.AttendanceMode),
			WorkStartTime:    emp.WorkStartTime,
			WorkEndTime:      emp.WorkEndTime,
			WeeklyHours:      emp.WeeklyHours,
		})
	}
	response.Success(w, responses)
}

// FieldView renders one personnel field for the profile page: the stored
// value plus any pending proposal, which takes display precedence.
func (h *EmployeeHandler) FieldView(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	employeeID := chi.URLParam(r, "id")
	fieldName := r.URL.Query().Get("field")
	if fieldName == "" {
		response.BadRequest(w, "field query parameter is required", nil)
		return
	}

	if !claims.IsAdmin && employeeID != claims.EmployeeID {
		response.Forbidden(w, "Employees may only view their own profile fields")
		return
	}

	view, err := h.changeService.FieldView(r.Context(), employeeID, fieldName, claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}
