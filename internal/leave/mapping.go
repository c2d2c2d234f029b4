package leave

import (
	leaveDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/leave"
	"github.com/google/uuid"
)

func MapCreateRequest(req CreateLeaveRequest) *leaveDatamodel.Leave {
	return &leaveDatamodel.Leave{
		ID:                 uuid.New(),
		LeaveType:          req.LeaveType,
		MaxDaysAllowed:     req.MaxDaysAllowed,
		RemainingLeaveDays: req.RemainingLeaveDays,
		Description:        req.Description,
	}
}

func MapUpdateRequest(id uuid.UUID, req UpdateLeaveRequest) *leaveDatamodel.Leave {
	return &leaveDatamodel.Leave{
		ID:                 id,
		LeaveType:          req.LeaveType,
		MaxDaysAllowed:     req.MaxDaysAllowed,
		RemainingLeaveDays: req.RemainingLeaveDays,
		Description:        req.Description,
	}
}

func MapToResponse(l *leaveDatamodel.Leave) LeaveResponse {
	return LeaveResponse{
		ID:                 l.ID,
		LeaveType:          l.LeaveType,
		MaxDaysAllowed:     l.MaxDaysAllowed,
		RemainingLeaveDays: l.RemainingLeaveDays,
		Description:        l.Description,
	}
}
