package person

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/core/crud"
	personDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/person"
)

type RepositoryAPI = crud.Repository[personDatamodel.Person]

type Service = crud.Service[personDatamodel.Person, CreatePersonRequest, UpdatePersonRequest, PersonResponse]

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return crud.NewService(repo, crud.Mapping[personDatamodel.Person, CreatePersonRequest, UpdatePersonRequest, PersonResponse]{
		FromCreate: MapCreateRequest,
		FromUpdate: MapUpdateRequest,
		ToResponse: MapToResponse,
	}, logger, "person", "people")
}
