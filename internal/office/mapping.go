package office

import (
	officeDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/office"
	"github.com/google/uuid"
)

func MapCreateRequest(req CreateOfficeRequest) *officeDatamodel.Office {
	return &officeDatamodel.Office{
		ID:          uuid.New(),
		Name:        req.Name,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
}

func MapUpdateRequest(id uuid.UUID, req UpdateOfficeRequest) *officeDatamodel.Office {
	return &officeDatamodel.Office{
		ID:          id,
		Name:        req.Name,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
}

func MapToResponse(o *officeDatamodel.Office) OfficeResponse {
	return OfficeResponse{
		ID:          o.ID,
		Name:        o.Name,
		Location:    o.Location,
		PhoneNumber: o.PhoneNumber,
		Email:       o.Email,
	}
}
