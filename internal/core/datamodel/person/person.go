package person

import (
	"time"

	"github.com/google/uuid"
)

type Person struct {
	ID          uuid.UUID `db:"Id" gorm:"column:Id;type:uuid;primaryKey"`
	FirstName   string    `db:"FirstName" gorm:"column:FirstName;not null"`
	LastName    string    `db:"LastName" gorm:"column:LastName;not null"`
	DateOfBirth time.Time `db:"DateOfBirth" gorm:"column:DateOfBirth;type:date;not null"`
	Email       string    `db:"Email" gorm:"column:Email;not null"`
}

func (Person) TableName() string {
	return "People"
}
