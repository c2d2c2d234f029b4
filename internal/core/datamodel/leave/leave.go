package leave

import "github.com/google/uuid"

type Leave struct {
	ID                 uuid.UUID `db:"Id" gorm:"column:Id;type:uuid;primaryKey"`
	LeaveType          string    `db:"LeaveType" gorm:"column:LeaveType;not null"`
	MaxDaysAllowed     int       `db:"MaxDaysAllowed" gorm:"column:MaxDaysAllowed;not null"`
	RemainingLeaveDays int       `db:"RemainingLeaveDays" gorm:"column:RemainingLeaveDays;not null"`
	Description        string    `db:"Description" gorm:"column:Description;not null"`
}

func (Leave) TableName() string {
	return "Leaves"
}
