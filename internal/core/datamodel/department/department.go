package department

import "github.com/google/uuid"

type Department struct {
	ID          uuid.UUID `db:"Id" gorm:"column:Id;type:uuid;primaryKey"`
	OfficeID    uuid.UUID `db:"OfficeId" gorm:"column:OfficeId;type:uuid;not null"`
	Name        string    `db:"Name" gorm:"column:Name;not null"`
	Manager     *string   `db:"Manager" gorm:"column:Manager"`
	Description string    `db:"Description" gorm:"column:Description;not null"`
}

func (Department) TableName() string {
	return "Departments"
}
