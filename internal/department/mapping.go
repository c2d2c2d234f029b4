package department

import (
	departmentDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/department"
	"github.com/google/uuid"
)

func MapCreateRequest(req CreateDepartmentRequest) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:          uuid.New(),
		OfficeID:    req.OfficeID,
		Name:        req.Name,
		Manager:     req.Manager,
		Description: req.Description,
	}
}

func MapUpdateRequest(id uuid.UUID, req UpdateDepartmentRequest) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:          id,
		OfficeID:    req.OfficeID,
		Name:        req.Name,
		Manager:     req.Manager,
		Description: req.Description,
	}
}

func MapToResponse(d *departmentDatamodel.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		OfficeID:    d.OfficeID,
		Name:        d.Name,
		Manager:     d.Manager,
		Description: d.Description,
	}
}
