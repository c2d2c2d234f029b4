package employeeattendance

import "github.com/google/uuid"

// EmployeeAttendance is one employee's entry for a day. AttendanceID links it
// to an Attendance aggregate and is null for entries recorded on their own.
type EmployeeAttendance struct {
	ID               uuid.UUID     `db:"Id" gorm:"column:Id;type:uuid;primaryKey"`
	AttendanceID     uuid.NullUUID `db:"AttendanceId" gorm:"column:AttendanceId;type:uuid"`
	EmployeeID       uuid.UUID     `db:"EmployeeId" gorm:"column:EmployeeId;type:uuid;not null"`
	EmployeeLeaveID  uuid.NullUUID `db:"EmployeeLeaveId" gorm:"column:EmployeeLeaveId;type:uuid"`
	TimeIn           *string       `db:"TimeIn" gorm:"column:TimeIn"`
	TimeOut          *string       `db:"TimeOut" gorm:"column:TimeOut"`
	Present          bool          `db:"Present" gorm:"column:Present;not null"`
	Reason           *string       `db:"Reason" gorm:"column:Reason"`
	TotalWorkedHours float64       `db:"TotalWorkedHours" gorm:"column:TotalWorkedHours;not null"`
}

func (EmployeeAttendance) TableName() string {
	return "EmployeeAttendances"
}
