package department

import (
	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/validation"
	"github.com/google/uuid"
)

type CreateDepartmentRequest struct {
	OfficeID    uuid.UUID `json:"officeId"`
	Name        string    `json:"name"`
	Manager     *string   `json:"manager"`
	Description string    `json:"description"`
}

type UpdateDepartmentRequest CreateDepartmentRequest

type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	OfficeID    uuid.UUID `json:"officeId"`
	Name        string    `json:"name"`
	Manager     *string   `json:"manager"`
	Description string    `json:"description"`
}

// Validate only requires a name. An unknown officeId is left to the foreign
// key.
func (r CreateDepartmentRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", r.Name).Required().MaxLength(255)
	v.Field("manager", r.Manager).MaxLength(255)
	return v.Validate()
}

func (r UpdateDepartmentRequest) Validate() *errors.AppError {
	return CreateDepartmentRequest(r).Validate()
}
