package employee

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/core/crud"
	employeeDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employee"
)

type RepositoryAPI = crud.Repository[employeeDatamodel.Employee]

type Service = crud.Service[employeeDatamodel.Employee, CreateEmployeeRequest, UpdateEmployeeRequest, EmployeeResponse]

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return crud.NewService(repo, crud.Mapping[employeeDatamodel.Employee, CreateEmployeeRequest, UpdateEmployeeRequest, EmployeeResponse]{
		FromCreate: MapCreateRequest,
		FromUpdate: MapUpdateRequest,
		ToResponse: MapToResponse,
	}, logger, "employee", "employees")
}
