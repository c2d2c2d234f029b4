package employeeleave

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeLeave struct {
	ID         uuid.UUID `db:"Id" gorm:"column:Id;type:uuid;primaryKey"`
	LeaveID    uuid.UUID `db:"LeaveId" gorm:"column:LeaveId;type:uuid;not null"`
	EmployeeID uuid.UUID `db:"EmployeeId" gorm:"column:EmployeeId;type:uuid;not null"`
	StartDate  time.Time `db:"StartDate" gorm:"column:StartDate;type:date;not null"`
	EndDate    time.Time `db:"EndDate" gorm:"column:EndDate;type:date;not null"`
	IsActive   bool      `db:"IsActive" gorm:"column:IsActive;not null"`
	IsApproved bool      `db:"IsApproved" gorm:"column:IsApproved;not null"`
}

func (EmployeeLeave) TableName() string {
	return "EmployeeLeaves"
}
