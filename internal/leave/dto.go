package leave

import (
	"math"

	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/validation"
	"github.com/google/uuid"
)

type CreateLeaveRequest struct {
	LeaveType          string `json:"leaveType"`
	MaxDaysAllowed     int    `json:"maxDaysAllowed"`
	RemainingLeaveDays int    `json:"remainingLeaveDays"`
	Description        string `json:"description"`
}

type UpdateLeaveRequest CreateLeaveRequest

type LeaveResponse struct {
	ID                 uuid.UUID `json:"id"`
	LeaveType          string    `json:"leaveType"`
	MaxDaysAllowed     int       `json:"maxDaysAllowed"`
	RemainingLeaveDays int       `json:"remainingLeaveDays"`
	Description        string    `json:"description"`
}

func (r CreateLeaveRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("leaveType", r.LeaveType).Required().MaxLength(255)
	v.Field("maxDaysAllowed", r.MaxDaysAllowed).MinInt(1).MaxInt(math.MaxInt32)
	v.Field("remainingLeaveDays", r.RemainingLeaveDays).MinInt(0).MaxInt(math.MaxInt32)
	return v.Validate()
}

func (r UpdateLeaveRequest) Validate() *errors.AppError {
	return CreateLeaveRequest(r).Validate()
}
