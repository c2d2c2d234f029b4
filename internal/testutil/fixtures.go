package testutil

import (
	"time"

	"github.com/frahmantamala/attendance-system/internal/core/datamodel/department"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/employee"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeleave"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/leave"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/office"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/person"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Fixture is a minimal organisation: one office with one department, one
// person employed there and one approved leave.
type Fixture struct {
	Office        office.Office
	Department    department.Department
	Person        person.Person
	Employee      employee.Employee
	Leave         leave.Leave
	EmployeeLeave employeeleave.EmployeeLeave
}

// SeedFixture inserts a Fixture and returns it.
func SeedFixture(db *sqlx.DB) (*Fixture, error) {
	f := &Fixture{
		Office: office.Office{
			ID: uuid.New(), Name: "HQ", Location: "Jakarta", PhoneNumber: "555-0100", Email: "hq@example.com",
		},
		Person: person.Person{
			ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			DateOfBirth: time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC),
		},
		Leave: leave.Leave{
			ID: uuid.New(), LeaveType: "Annual", MaxDaysAllowed: 12, RemainingLeaveDays: 12, Description: "Paid annual leave",
		},
	}
	f.Department = department.Department{
		ID: uuid.New(), OfficeID: f.Office.ID, Name: "Engineering", Description: "Builds things",
	}
	f.Employee = employee.Employee{
		ID: uuid.New(), PersonID: f.Person.ID, DepartmentID: f.Department.ID, WorkEmail: "ada@work.example.com",
	}
	f.EmployeeLeave = employeeleave.EmployeeLeave{
		ID: uuid.New(), LeaveID: f.Leave.ID, EmployeeID: f.Employee.ID,
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		IsActive:  true, IsApproved: true,
	}

	inserts := []struct {
		query string
		arg   interface{}
	}{
		{`INSERT INTO "Offices" ("Id", "Name", "Location", "PhoneNumber", "Email") VALUES (:Id, :Name, :Location, :PhoneNumber, :Email)`, &f.Office},
		{`INSERT INTO "People" ("Id", "FirstName", "LastName", "DateOfBirth", "Email") VALUES (:Id, :FirstName, :LastName, :DateOfBirth, :Email)`, &f.Person},
		{`INSERT INTO "Leaves" ("Id", "LeaveType", "MaxDaysAllowed", "RemainingLeaveDays", "Description") VALUES (:Id, :LeaveType, :MaxDaysAllowed, :RemainingLeaveDays, :Description)`, &f.Leave},
		{`INSERT INTO "Departments" ("Id", "OfficeId", "Name", "Manager", "Description") VALUES (:Id, :OfficeId, :Name, :Manager, :Description)`, &f.Department},
		{`INSERT INTO "Employees" ("Id", "PersonId", "DepartmentId", "WorkEmail") VALUES (:Id, :PersonId, :DepartmentId, :WorkEmail)`, &f.Employee},
		{`INSERT INTO "EmployeeLeaves" ("Id", "LeaveId", "EmployeeId", "StartDate", "EndDate", "IsActive", "IsApproved") VALUES (:Id, :LeaveId, :EmployeeId, :StartDate, :EndDate, :IsActive, :IsApproved)`, &f.EmployeeLeave},
	}
	for _, in := range inserts {
		if _, err := db.NamedExec(in.query, in.arg); err != nil {
			return nil, err
		}
	}
	return f, nil
}
