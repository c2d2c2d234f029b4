package attendance

import (
	"fmt"

	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/dates"
	"github.com/frahmantamala/attendance-system/internal/core/common/validation"
	"github.com/frahmantamala/attendance-system/internal/employeeattendance"
	"github.com/google/uuid"
)

type CreateAttendanceRequest struct {
	DepartmentID        uuid.UUID                                            `json:"departmentId"`
	Date                dates.Date                                           `json:"date"`
	EmployeeAttendances []employeeattendance.CreateEmployeeAttendanceRequest `json:"employeeAttendances"`
}

// UpdateAttendanceRequest replaces the attendance and its whole entry list.
// Entries that carry an id keep it.
type UpdateAttendanceRequest struct {
	DepartmentID        uuid.UUID                                            `json:"departmentId"`
	Date                dates.Date                                           `json:"date"`
	EmployeeAttendances []employeeattendance.UpdateEmployeeAttendanceRequest `json:"employeeAttendances"`
}

type AttendanceResponse struct {
	ID                  uuid.UUID                                       `json:"id"`
	DepartmentID        uuid.UUID                                       `json:"departmentId"`
	Date                dates.Date                                      `json:"date"`
	EmployeeAttendances []employeeattendance.EmployeeAttendanceResponse `json:"employeeAttendances"`
}

func (r CreateAttendanceRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("date", r.Date).Required()
	for i, entry := range r.EmployeeAttendances {
		v.Nested(entryField(i), entry.Validate())
	}
	return v.Validate()
}

func (r UpdateAttendanceRequest) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("date", r.Date).Required()
	seen := make(map[uuid.UUID]bool, len(r.EmployeeAttendances))
	for i, entry := range r.EmployeeAttendances {
		v.Nested(entryField(i), entry.Validate())
		if entry.ID == nil || *entry.ID == uuid.Nil {
			continue
		}
		if seen[*entry.ID] {
			v.Nested(entryField(i), errors.NewValidationFieldError("id", "id is listed more than once", errors.ErrCodeValidationFailed))
		}
		seen[*entry.ID] = true
	}
	return v.Validate()
}

func entryField(i int) string {
	return fmt.Sprintf("employeeAttendances[%d]", i)
}
