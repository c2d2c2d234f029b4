package leave

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/core/crud"
	leaveDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/leave"
)

type RepositoryAPI = crud.Repository[leaveDatamodel.Leave]

type Service = crud.Service[leaveDatamodel.Leave, CreateLeaveRequest, UpdateLeaveRequest, LeaveResponse]

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return crud.NewService(repo, crud.Mapping[leaveDatamodel.Leave, CreateLeaveRequest, UpdateLeaveRequest, LeaveResponse]{
		FromCreate: MapCreateRequest,
		FromUpdate: MapUpdateRequest,
		ToResponse: MapToResponse,
	}, logger, "leave", "leaves")
}
