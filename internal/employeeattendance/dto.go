package employeeattendance

import (
	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/validation"
	"github.com/google/uuid"
)

type CreateEmployeeAttendanceRequest struct {
	EmployeeID       uuid.UUID  `json:"employeeId"`
	EmployeeLeaveID  *uuid.UUID `json:"employeeLeaveId"`
	TimeIn           string     `json:"timeIn"`
	TimeOut          string     `json:"timeOut"`
	Present          *bool      `json:"present"`
	Reason           string     `json:"reason"`
	TotalWorkedHours float64    `json:"totalWorkedHours"`
}

// UpdateEmployeeAttendanceRequest carries an optional id so entries nested in
// an attendance update can keep their identity.
type UpdateEmployeeAttendanceRequest struct {
	ID *uuid.UUID `json:"id,omitempty"`
	CreateEmployeeAttendanceRequest
}

type EmployeeAttendanceResponse struct {
	ID               uuid.UUID  `json:"id"`
	AttendanceID     *uuid.UUID `json:"attendanceId,omitempty"`
	EmployeeID       uuid.UUID  `json:"employeeId"`
	EmployeeLeaveID  *uuid.UUID `json:"employeeLeaveId"`
	TimeIn           string     `json:"timeIn"`
	TimeOut          string     `json:"timeOut"`
	Present          bool       `json:"present"`
	Reason           string     `json:"reason"`
	TotalWorkedHours float64    `json:"totalWorkedHours"`
}

func (r CreateEmployeeAttendanceRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("employeeId", r.EmployeeID).Required()
	v.Field("present", r.Present).Required()
	v.Field("timeIn", r.TimeIn).TimeOfDay()
	v.Field("timeOut", r.TimeOut).TimeOfDay()
	return v.Validate()
}
