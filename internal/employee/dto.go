package employee

import (
	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/validation"
	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	PersonID     uuid.UUID `json:"personId"`
	DepartmentID uuid.UUID `json:"departmentId"`
	WorkEmail    string    `json:"workEmail"`
}

type UpdateEmployeeRequest CreateEmployeeRequest

type EmployeeResponse struct {
	ID           uuid.UUID `json:"id"`
	PersonID     uuid.UUID `json:"personId"`
	DepartmentID uuid.UUID `json:"departmentId"`
	WorkEmail    string    `json:"workEmail"`
}

func (r CreateEmployeeRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("workEmail", r.WorkEmail).Required().Email().MaxLength(255)
	return v.Validate()
}

func (r UpdateEmployeeRequest) Validate() *errors.AppError {
	return CreateEmployeeRequest(r).Validate()
}
