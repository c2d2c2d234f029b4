package employeeattendance

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/core/crud"
	employeeattendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeattendance"
)

type RepositoryAPI = crud.Repository[employeeattendanceDatamodel.EmployeeAttendance]

type Service = crud.Service[employeeattendanceDatamodel.EmployeeAttendance, CreateEmployeeAttendanceRequest, UpdateEmployeeAttendanceRequest, EmployeeAttendanceResponse]

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return crud.NewService(repo, crud.Mapping[employeeattendanceDatamodel.EmployeeAttendance, CreateEmployeeAttendanceRequest, UpdateEmployeeAttendanceRequest, EmployeeAttendanceResponse]{
		FromCreate: MapCreateRequest,
		FromUpdate: MapUpdateRequest,
		ToResponse: MapToResponse,
		// an entry owned by an attendance stays owned by it
		BeforeUpdate: func(existing, updated *employeeattendanceDatamodel.EmployeeAttendance) {
			updated.AttendanceID = existing.AttendanceID
		},
	}, logger, "employee attendance", "employee attendances")
}
