package employeeattendance

import (
	employeeattendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeattendance"
	"github.com/google/uuid"
)

// MapCreateRequest builds a standalone entry, not linked to any attendance.
func MapCreateRequest(req CreateEmployeeAttendanceRequest) *employeeattendanceDatamodel.EmployeeAttendance {
	return toRecord(uuid.New(), uuid.NullUUID{}, req)
}

func MapUpdateRequest(id uuid.UUID, req UpdateEmployeeAttendanceRequest) *employeeattendanceDatamodel.EmployeeAttendance {
	return toRecord(id, uuid.NullUUID{}, req.CreateEmployeeAttendanceRequest)
}

// MapNestedCreateRequest builds an entry owned by the given attendance.
func MapNestedCreateRequest(attendanceID uuid.UUID, req CreateEmployeeAttendanceRequest) *employeeattendanceDatamodel.EmployeeAttendance {
	return toRecord(uuid.New(), uuid.NullUUID{UUID: attendanceID, Valid: true}, req)
}

// MapNestedUpdateRequest keeps the entry id when the request has one and
// assigns a new one otherwise.
func MapNestedUpdateRequest(attendanceID uuid.UUID, req UpdateEmployeeAttendanceRequest) *employeeattendanceDatamodel.EmployeeAttendance {
	id := uuid.New()
	if req.ID != nil && *req.ID != uuid.Nil {
		id = *req.ID
	}
	return toRecord(id, uuid.NullUUID{UUID: attendanceID, Valid: true}, req.CreateEmployeeAttendanceRequest)
}

func MapToResponse(e *employeeattendanceDatamodel.EmployeeAttendance) EmployeeAttendanceResponse {
	return EmployeeAttendanceResponse{
		ID:               e.ID,
		AttendanceID:     fromNullUUID(e.AttendanceID),
		EmployeeID:       e.EmployeeID,
		EmployeeLeaveID:  fromNullUUID(e.EmployeeLeaveID),
		TimeIn:           fromNullString(e.TimeIn),
		TimeOut:          fromNullString(e.TimeOut),
		Present:          e.Present,
		Reason:           fromNullString(e.Reason),
		TotalWorkedHours: e.TotalWorkedHours,
	}
}

func toRecord(id uuid.UUID, attendanceID uuid.NullUUID, req CreateEmployeeAttendanceRequest) *employeeattendanceDatamodel.EmployeeAttendance {
	record := &employeeattendanceDatamodel.EmployeeAttendance{
		ID:               id,
		AttendanceID:     attendanceID,
		EmployeeID:       req.EmployeeID,
		EmployeeLeaveID:  toNullUUID(req.EmployeeLeaveID),
		TimeIn:           toNullString(req.TimeIn),
		TimeOut:          toNullString(req.TimeOut),
		Reason:           toNullString(req.Reason),
		TotalWorkedHours: req.TotalWorkedHours,
	}
	if req.Present != nil {
		record.Present = *req.Present
	}
	return record
}

// empty strings are stored as NULL
func toNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromNullString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil || *id == uuid.Nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func fromNullUUID(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	v := id.UUID
	return &v
}
