package department

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/core/crud"
	departmentDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/department"
)

type RepositoryAPI = crud.Repository[departmentDatamodel.Department]

type Service = crud.Service[departmentDatamodel.Department, CreateDepartmentRequest, UpdateDepartmentRequest, DepartmentResponse]

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return crud.NewService(repo, crud.Mapping[departmentDatamodel.Department, CreateDepartmentRequest, UpdateDepartmentRequest, DepartmentResponse]{
		FromCreate: MapCreateRequest,
		FromUpdate: MapUpdateRequest,
		ToResponse: MapToResponse,
	}, logger, "department", "departments")
}
