package employeeleave

import (
	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/dates"
	"github.com/frahmantamala/attendance-system/internal/core/common/validation"
	"github.com/google/uuid"
)

type CreateEmployeeLeaveRequest struct {
	LeaveID    uuid.UUID  `json:"leaveId"`
	EmployeeID uuid.UUID  `json:"employeeId"`
	StartDate  dates.Date `json:"startDate"`
	EndDate    dates.Date `json:"endDate"`
	IsActive   bool       `json:"isActive"`
	IsApproved bool       `json:"isApproved"`
}

type UpdateEmployeeLeaveRequest CreateEmployeeLeaveRequest

type EmployeeLeaveResponse struct {
	ID         uuid.UUID  `json:"id"`
	LeaveID    uuid.UUID  `json:"leaveId"`
	EmployeeID uuid.UUID  `json:"employeeId"`
	StartDate  dates.Date `json:"startDate"`
	EndDate    dates.Date `json:"endDate"`
	IsActive   bool       `json:"isActive"`
	IsApproved bool       `json:"isApproved"`
}

func (r CreateEmployeeLeaveRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("startDate", r.StartDate).Required()
	v.Field("endDate", r.EndDate).Required()
	return v.Validate()
}

func (r UpdateEmployeeLeaveRequest) Validate() *errors.AppError {
	return CreateEmployeeLeaveRequest(r).Validate()
}
