package employeeleave

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/core/crud"
	employeeleaveDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeleave"
)

type RepositoryAPI = crud.Repository[employeeleaveDatamodel.EmployeeLeave]

type Service = crud.Service[employeeleaveDatamodel.EmployeeLeave, CreateEmployeeLeaveRequest, UpdateEmployeeLeaveRequest, EmployeeLeaveResponse]

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return crud.NewService(repo, crud.Mapping[employeeleaveDatamodel.EmployeeLeave, CreateEmployeeLeaveRequest, UpdateEmployeeLeaveRequest, EmployeeLeaveResponse]{
		FromCreate: MapCreateRequest,
		FromUpdate: MapUpdateRequest,
		ToResponse: MapToResponse,
	}, logger, "employee leave", "employee leaves")
}
