package change

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/portal-backend-go/internal/domain/change"
	"github.com/staffhub/portal-backend-go/internal/domain/employee"
	"github.com/staffhub/portal-backend-go/internal/pkg/validator"
)

const testCompanyID = "company-1"

type fakeChangeRepo struct {
	nextID   int64
	requests map[int64]change.ChangeRequest
}

func newFakeChangeRepo() *fakeChangeRepo {
	return &fakeChangeRepo{requests: make(map[int64]change.ChangeRequest)}
}

func (f *fakeChangeRepo) Create(_ context.Context, req change.ChangeRequest) (change.ChangeRequest, error) {
	f.nextID++
	req.ID = f.nextID
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeChangeRepo) GetByID(_ context.Context, id int64, companyID string) (change.ChangeRequest, error) {
	req, ok := f.requests[id]
	if !ok || req.CompanyID != companyID {
		return change.ChangeRequest{}, change.ErrChangeRequestNotFound
	}
	return req, nil
}

func (f *fakeChangeRepo) ListByEmployee(_ context.Context, employeeID string, companyID string) ([]change.ChangeRequest, error) {
	var out []change.ChangeRequest
	for id := f.nextID; id >= 1; id-- {
		req, ok := f.requests[id]
		if ok && req.EmployeeID == employeeID && req.CompanyID == companyID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeChangeRepo) ListByCompany(_ context.Context, companyID string) ([]change.ChangeRequest, error) {
	var out []change.ChangeRequest
	for id := f.nextID; id >= 1; id-- {
		req, ok := f.requests[id]
		if ok && req.CompanyID == companyID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeChangeRepo) LatestPending(_ context.Context, employeeID string, fieldName string, companyID string) (*change.ChangeRequest, error) {
	return f.latest(employeeID, fieldName, companyID, change.ChangeRequestStatusPending), nil
}

func (f *fakeChangeRepo) LatestApproved(_ context.Context, employeeID string, fieldName string, companyID string) (*change.ChangeRequest, error) {
	return f.latest(employeeID, fieldName, companyID, change.ChangeRequestStatusApproved), nil
}

func (f *fakeChangeRepo) latest(employeeID, fieldName, companyID string, status change.ChangeRequestStatus) *change.ChangeRequest {
	for id := f.nextID; id >= 1; id-- {
		req, ok := f.requests[id]
		if ok && req.EmployeeID == employeeID && req.FieldName == fieldName &&
			req.CompanyID == companyID && req.Status == status {
			return &req
		}
	}
	return nil
}

func (f *fakeChangeRepo) MarkApproved(_ context.Context, id int64, companyID string, approverID string) (bool, error) {
	req, ok := f.requests[id]
	if !ok || req.CompanyID != companyID || req.Status != change.ChangeRequestStatusPending {
		return false, nil
	}
	req.Status = change.ChangeRequestStatusApproved
	req.ApprovedBy = &approverID
	f.requests[id] = req
	return true, nil
}

type fakeEmployeeRepo struct {
	employees     map[string]employee.Employee
	updateErr     error
	updatedFields []string
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		f.employees[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, _ string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByCompany(_ context.Context, _ string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListWithAutomaticAttendance(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) UpdateField(_ context.Context, employeeID string, _ string, fieldName string, value string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	switch fieldName {
	case "citizenship":
		emp.Citizenship = &value
	case "address":
		emp.Address = &value
	case "phone_number":
		emp.PhoneNumber = &value
	case "marital_status":
		emp.MaritalStatus = &value
	case "bank_account_number":
		emp.BankAccountNumber = &value
	}
	f.employees[employeeID] = emp
	f.updatedFields = append(f.updatedFields, fieldName)
	return nil
}

// passthroughTransactor runs the function directly; transactional semantics
// are exercised against a real database elsewhere.
type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(employees ...employee.Employee) (*Service, *fakeChangeRepo, *fakeEmployeeRepo) {
	changeRepo := newFakeChangeRepo()
	employeeRepo := newFakeEmployeeRepo(employees...)
	return NewService(changeRepo, employeeRepo, passthroughTransactor{}), changeRepo, employeeRepo
}

func testEmployee() employee.Employee {
	citizenship := "SK"
	return employee.Employee{
		ID:               "emp-1",
		CompanyID:        testCompanyID,
		FullName:         "Maria Kovacova",
		EmploymentStatus: employee.EmploymentStatusActive,
		Citizenship:      &citizenship,
	}
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	svc, _, _ := newService(testEmployee())

	created, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
		EmployeeID:   "emp-1",
		FieldName:    "citizenship",
		CurrentValue: "SK",
		NewValue:     "CZ",
		Reason:       "Moved to Prague",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, change.ChangeRequestStatusPending, created.Status)

	pending, err := svc.LatestPendingFor(context.Background(), "emp-1", "citizenship", testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "CZ", pending.NewValue)
}

func TestSubmit_RejectsUnknownField(t *testing.T) {
	svc, _, _ := newService(testEmployee())

	_, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
		EmployeeID: "emp-1",
		FieldName:  "salary",
		NewValue:   "1000000",
	})
	assert.ErrorIs(t, err, employee.ErrFieldNotChangeable)
}

func TestSubmit_ValidatesPayload(t *testing.T) {
	svc, _, _ := newService(testEmployee())

	_, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "field_name")
	assert.Contains(t, fields, "new_value")
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
		EmployeeID: "ghost",
		FieldName:  "citizenship",
		NewValue:   "CZ",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApprove_WritesFieldThenFlipsStatus(t *testing.T) {
	svc, changeRepo, employeeRepo := newService(testEmployee())

	created, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
		EmployeeID:   "emp-1",
		FieldName:    "citizenship",
		CurrentValue: "SK",
		NewValue:     "CZ",
	})
	require.NoError(t, err)

	err = svc.Approve(context.Background(), created.ID, testCompanyID, "admin-1")
	require.NoError(t, err)

	emp, _ := employeeRepo.GetByID(context.Background(), "emp-1", testCompanyID)
	require.NotNil(t, emp.Citizenship)
	assert.Equal(t, "CZ", *emp.Citizenship)

	stored, _ := changeRepo.GetByID(context.Background(), created.ID, testCompanyID)
	assert.Equal(t, change.ChangeRequestStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, "admin-1", *stored.ApprovedBy)
}

func TestApprove_Twice_IsNoOp(t *testing.T) {
	svc, _, employeeRepo := newService(testEmployee())

	created, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
		EmployeeID: "emp-1",
		FieldName:  "citizenship",
		NewValue:   "CZ",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(context.Background(), created.ID, testCompanyID, "admin-1"))
	require.NoError(t, svc.Approve(context.Background(), created.ID, testCompanyID, "admin-2"))

	// The second approval never touched the employee row.
	assert.Len(t, employeeRepo.updatedFields, 1)
}

func TestApprove_FieldWriteFailureKeepsRequestPending(t *testing.T) {
	svc, changeRepo, employeeRepo := newService(testEmployee())
	employeeRepo.updateErr = errors.New("connection reset")

	created, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
		EmployeeID: "emp-1",
		FieldName:  "citizenship",
		NewValue:   "CZ",
	})
	require.NoError(t, err)

	err = svc.Approve(context.Background(), created.ID, testCompanyID, "admin-1")
	require.Error(t, err)

	stored, _ := changeRepo.GetByID(context.Background(), created.ID, testCompanyID)
	assert.Equal(t, change.ChangeRequestStatusPending, stored.Status)
}

func TestApprove_UnknownRequest(t *testing.T) {
	svc, _, _ := newService(testEmployee())

	err := svc.Approve(context.Background(), 99, testCompanyID, "admin-1")
	assert.ErrorIs(t, err, change.ErrChangeRequestNotFound)
}

func TestLatestPending_HighestIDWins(t *testing.T) {
	svc, _, _ := newService(testEmployee())

	for _, v := range []string{"CZ", "AT", "DE"} {
		_, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
			EmployeeID: "emp-1",
			FieldName:  "citizenship",
			NewValue:   v,
		})
		require.NoError(t, err)
	}

	pending, err := svc.LatestPendingFor(context.Background(), "emp-1", "citizenship", testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "DE", pending.NewValue)
	assert.Equal(t, int64(3), pending.ID)
}

func TestFieldView_PendingTakesDisplayPrecedence(t *testing.T) {
	svc, _, _ := newService(testEmployee())

	// Without a pending request the stored value is displayed.
	view, err := svc.FieldView(context.Background(), "emp-1", "citizenship", testCompanyID)
	require.NoError(t, err)
	assert.False(t, view.HasPending)
	require.NotNil(t, view.DisplayValue)
	assert.Equal(t, "SK", *view.DisplayValue)

	created, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
		EmployeeID:   "emp-1",
		FieldName:    "citizenship",
		CurrentValue: "SK",
		NewValue:     "CZ",
		Reason:       "Moved to Prague",
	})
	require.NoError(t, err)

	view, err = svc.FieldView(context.Background(), "emp-1", "citizenship", testCompanyID)
	require.NoError(t, err)
	assert.True(t, view.HasPending)
	require.NotNil(t, view.StoredValue)
	assert.Equal(t, "SK", *view.StoredValue)
	require.NotNil(t, view.DisplayValue)
	assert.Equal(t, "CZ", *view.DisplayValue)
	require.NotNil(t, view.PendingChange)
	assert.Equal(t, created.ID, view.PendingChange.ID)

	// After approval the stored value catches up and nothing is pending.
	require.NoError(t, svc.Approve(context.Background(), created.ID, testCompanyID, "admin-1"))

	view, err = svc.FieldView(context.Background(), "emp-1", "citizenship", testCompanyID)
	require.NoError(t, err)
	assert.False(t, view.HasPending)
	require.NotNil(t, view.DisplayValue)
	assert.Equal(t, "CZ", *view.DisplayValue)
}

func TestFieldView_UnknownField(t *testing.T) {
	svc, _, _ := newService(testEmployee())

	_, err := svc.FieldView(context.Background(), "emp-1", "salary", testCompanyID)
	assert.ErrorIs(t, err, employee.ErrFieldNotChangeable)
}

func TestListByEmployee_NewestFirst(t *testing.T) {
	svc, _, _ := newService(testEmployee())

	for _, field := range []string{"citizenship", "address", "phone_number"} {
		_, err := svc.Submit(context.Background(), testCompanyID, change.SubmitChangeRequest{
			EmployeeID: "emp-1",
			FieldName:  field,
			NewValue:   "x",
		})
		require.NoError(t, err)
	}

	requests, err := svc.ListByEmployee(context.Background(), "emp-1", testCompanyID)
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, int64(3), requests[0].ID)
	assert.Equal(t, int64(1), requests[2].ID)
}
