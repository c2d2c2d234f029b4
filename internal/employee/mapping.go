package employee

import (
	employeeDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employee"
	"github.com/google/uuid"
)

func MapCreateRequest(req CreateEmployeeRequest) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:           uuid.New(),
		PersonID:     req.PersonID,
		DepartmentID: req.DepartmentID,
		WorkEmail:    req.WorkEmail,
	}
}

func MapUpdateRequest(id uuid.UUID, req UpdateEmployeeRequest) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:           id,
		PersonID:     req.PersonID,
		DepartmentID: req.DepartmentID,
		WorkEmail:    req.WorkEmail,
	}
}

func MapToResponse(e *employeeDatamodel.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		PersonID:     e.PersonID,
		DepartmentID: e.DepartmentID,
		WorkEmail:    e.WorkEmail,
	}
}
