package employeeleave

import (
	"github.com/frahmantamala/attendance-system/internal/core/common/dates"
	employeeleaveDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeleave"
	"github.com/google/uuid"
)

func MapCreateRequest(req CreateEmployeeLeaveRequest) *employeeleaveDatamodel.EmployeeLeave {
	return &employeeleaveDatamodel.EmployeeLeave{
		ID:         uuid.New(),
		LeaveID:    req.LeaveID,
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate.Time,
		EndDate:    req.EndDate.Time,
		IsActive:   req.IsActive,
		IsApproved: req.IsApproved,
	}
}

func MapUpdateRequest(id uuid.UUID, req UpdateEmployeeLeaveRequest) *employeeleaveDatamodel.EmployeeLeave {
	return &employeeleaveDatamodel.EmployeeLeave{
		ID:         id,
		LeaveID:    req.LeaveID,
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate.Time,
		EndDate:    req.EndDate.Time,
		IsActive:   req.IsActive,
		IsApproved: req.IsApproved,
	}
}

func MapToResponse(l *employeeleaveDatamodel.EmployeeLeave) EmployeeLeaveResponse {
	return EmployeeLeaveResponse{
		ID:         l.ID,
		LeaveID:    l.LeaveID,
		EmployeeID: l.EmployeeID,
		StartDate:  dates.FromTime(l.StartDate),
		EndDate:    dates.FromTime(l.EndDate),
		IsActive:   l.IsActive,
		IsApproved: l.IsApproved,
	}
}
