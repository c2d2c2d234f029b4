package office

import "github.com/google/uuid"

type Office struct {
	ID          uuid.UUID `db:"Id" gorm:"column:Id;type:uuid;primaryKey"`
	Name        string    `db:"Name" gorm:"column:Name;not null"`
	Location    string    `db:"Location" gorm:"column:Location;not null"`
	PhoneNumber string    `db:"PhoneNumber" gorm:"column:PhoneNumber;not null"`
	Email       string    `db:"Email" gorm:"column:Email;not null"`
}

func (Office) TableName() string {
	return "Offices"
}
