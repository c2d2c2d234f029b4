package person

import (
	"fmt"

	"github.com/frahmantamala/attendance-system/internal/core/common/dates"
	personDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/person"
	"github.com/google/uuid"
)

// MapCreateRequest builds a new record with a freshly generated id.
func MapCreateRequest(req CreatePersonRequest) *personDatamodel.Person {
	return &personDatamodel.Person{
		ID:          uuid.New(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth.Time,
		Email:       req.Email,
	}
}

func MapUpdateRequest(id uuid.UUID, req UpdatePersonRequest) *personDatamodel.Person {
	return &personDatamodel.Person{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth.Time,
		Email:       req.Email,
	}
}

func MapToResponse(p *personDatamodel.Person) PersonResponse {
	return PersonResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    FullName(p.FirstName, p.LastName),
		DateOfBirth: dates.FromTime(p.DateOfBirth),
		Email:       p.Email,
	}
}

// FullName renders a name as "First, Last".
func FullName(first, last string) string {
	return fmt.Sprintf("%s, %s", first, last)
}
