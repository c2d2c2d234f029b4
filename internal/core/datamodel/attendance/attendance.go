package attendance

import (
	"time"

	"github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeattendance"
	"github.com/google/uuid"
)

type Attendance struct {
	ID           uuid.UUID `db:"Id" gorm:"column:Id;type:uuid;primaryKey"`
	DepartmentID uuid.UUID `db:"DepartmentId" gorm:"column:DepartmentId;type:uuid;not null"`
	Date         time.Time `db:"Date" gorm:"column:Date;type:date;not null"`

	// loaded from "EmployeeAttendances" by AttendanceId
	EmployeeAttendances []*employeeattendance.EmployeeAttendance `db:"-" gorm:"-"`
}

func (Attendance) TableName() string {
	return "Attendances"
}
