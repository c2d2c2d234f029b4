package person

import (
	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/dates"
	"github.com/frahmantamala/attendance-system/internal/core/common/validation"
	"github.com/google/uuid"
)

type CreatePersonRequest struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DateOfBirth dates.Date `json:"dateOfBirth"`
	Email       string     `json:"email"`
}

type UpdatePersonRequest CreatePersonRequest

type PersonResponse struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	FullName    string     `json:"fullName"`
	DateOfBirth dates.Date `json:"dateOfBirth"`
	Email       string     `json:"email"`
}

func (r CreatePersonRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("firstName", r.FirstName).Required().MaxLength(255)
	v.Field("lastName", r.LastName).Required().MaxLength(255)
	v.Field("dateOfBirth", r.DateOfBirth).Required()
	v.Field("email", r.Email).Required().Email().MaxLength(255)
	return v.Validate()
}

func (r UpdatePersonRequest) Validate() *errors.AppError {
	return CreatePersonRequest(r).Validate()
}
