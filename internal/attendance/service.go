package attendance

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/core/crud"
	attendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/attendance"
)

type RepositoryAPI = crud.Repository[attendanceDatamodel.Attendance]

type Service = crud.Service[attendanceDatamodel.Attendance, CreateAttendanceRequest, UpdateAttendanceRequest, AttendanceResponse]

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return crud.NewService(repo, crud.Mapping[attendanceDatamodel.Attendance, CreateAttendanceRequest, UpdateAttendanceRequest, AttendanceResponse]{
		FromCreate: MapCreateRequest,
		FromUpdate: MapUpdateRequest,
		ToResponse: MapToResponse,
	}, logger, "attendance", "attendances")
}
