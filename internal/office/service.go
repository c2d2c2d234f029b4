package office

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/core/crud"
	officeDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/office"
)

type RepositoryAPI = crud.Repository[officeDatamodel.Office]

type Service = crud.Service[officeDatamodel.Office, CreateOfficeRequest, UpdateOfficeRequest, OfficeResponse]

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return crud.NewService(repo, crud.Mapping[officeDatamodel.Office, CreateOfficeRequest, UpdateOfficeRequest, OfficeResponse]{
		FromCreate: MapCreateRequest,
		FromUpdate: MapUpdateRequest,
		ToResponse: MapToResponse,
	}, logger, "office", "offices")
}
