package office

import (
	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/validation"
	"github.com/google/uuid"
)

type CreateOfficeRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type UpdateOfficeRequest CreateOfficeRequest

type OfficeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
}

// Validate requires name and location. Phone and email are optional but must
// be well formed when given.
func (r CreateOfficeRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", r.Name).Required().MaxLength(255)
	v.Field("location", r.Location).Required().MaxLength(255)
	v.Field("phoneNumber", r.PhoneNumber).Phone().MaxLength(20)
	v.Field("email", r.Email).Email().MaxLength(255)
	return v.Validate()
}

func (r UpdateOfficeRequest) Validate() *errors.AppError {
	return CreateOfficeRequest(r).Validate()
}
