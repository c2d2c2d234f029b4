package attendance

import (
	"github.com/frahmantamala/attendance-system/internal/core/common/dates"
	attendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/attendance"
	employeeattendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeattendance"
	"github.com/frahmantamala/attendance-system/internal/employeeattendance"
	"github.com/google/uuid"
)

// MapCreateRequest assigns a new attendance id and links every nested entry
// to it.
func MapCreateRequest(req CreateAttendanceRequest) *attendanceDatamodel.Attendance {
	id := uuid.New()
	entries := make([]*employeeattendanceDatamodel.EmployeeAttendance, 0, len(req.EmployeeAttendances))
	for _, e := range req.EmployeeAttendances {
		entries = append(entries, employeeattendance.MapNestedCreateRequest(id, e))
	}
	return &attendanceDatamodel.Attendance{
		ID:                  id,
		DepartmentID:        req.DepartmentID,
		Date:                req.Date.Time,
		EmployeeAttendances: entries,
	}
}

// MapUpdateRequest threads the path id into every nested entry.
func MapUpdateRequest(id uuid.UUID, req UpdateAttendanceRequest) *attendanceDatamodel.Attendance {
	entries := make([]*employeeattendanceDatamodel.EmployeeAttendance, 0, len(req.EmployeeAttendances))
	for _, e := range req.EmployeeAttendances {
		entries = append(entries, employeeattendance.MapNestedUpdateRequest(id, e))
	}
	return &attendanceDatamodel.Attendance{
		ID:                  id,
		DepartmentID:        req.DepartmentID,
		Date:                req.Date.Time,
		EmployeeAttendances: entries,
	}
}

func MapToResponse(a *attendanceDatamodel.Attendance) AttendanceResponse {
	entries := make([]employeeattendance.EmployeeAttendanceResponse, 0, len(a.EmployeeAttendances))
	for _, e := range a.EmployeeAttendances {
		entries = append(entries, employeeattendance.MapToResponse(e))
	}
	return AttendanceResponse{
		ID:                  a.ID,
		DepartmentID:        a.DepartmentID,
		Date:                dates.FromTime(a.Date),
		EmployeeAttendances: entries,
	}
}
