package employee

import "github.com/google/uuid"

type Employee struct {
	ID           uuid.UUID `db:"Id" gorm:"column:Id;type:uuid;primaryKey"`
	PersonID     uuid.UUID `db:"PersonId" gorm:"column:PersonId;type:uuid;not null"`
	DepartmentID uuid.UUID `db:"DepartmentId" gorm:"column:DepartmentId;type:uuid;not null"`
	WorkEmail    string    `db:"WorkEmail" gorm:"column:WorkEmail;not null"`
}

func (Employee) TableName() string {
	return "Employees"
}
