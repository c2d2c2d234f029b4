// Package seed loads a small demo organisation through gorm.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/attendance-system/internal/core/datamodel/attendance"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/department"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/employee"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeattendance"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeleave"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/leave"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/office"
	"github.com/frahmantamala/attendance-system/internal/core/datamodel/person"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeadOfficeEmail identifies the seeded office; its presence means the
// sample data is already loaded.
const HeadOfficeEmail = "head.office@example.com"

type Summary struct {
	Offices             int
	Departments         int
	People              int
	Employees           int
	Leaves              int
	EmployeeLeaves      int
	Attendances         int
	EmployeeAttendances int
	Skipped             bool
}

type Seeder struct {
	db     *gorm.DB
	logger *slog.Logger
}

func New(db *gorm.DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, logger: logger}
}

// Clear deletes every row, children first.
func (s *Seeder) Clear(ctx context.Context) error {
	models := []interface{}{
		&employeeattendance.EmployeeAttendance{},
		&attendance.Attendance{},
		&employeeleave.EmployeeLeave{},
		&employee.Employee{},
		&department.Department{},
		&leave.Leave{},
		&office.Office{},
		&person.Person{},
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range models {
			result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
			if result.Error != nil {
				return fmt.Errorf("clear %T: %w", model, result.Error)
			}
			s.logger.Info("cleared table", "model", fmt.Sprintf("%T", model), "rows", result.RowsAffected)
		}
		return nil
	})
}

// Seed inserts the demo organisation in one transaction. It does nothing when
// the head office already exists.
func (s *Seeder) Seed(ctx context.Context) (*Summary, error) {
	var existing office.Office
	err := s.db.WithContext(ctx).Where(`"Email" = ?`, HeadOfficeEmail).First(&existing).Error
	switch {
	case err == nil:
		s.logger.Info("sample data already present; skipping", "office", existing.ID)
		return &Summary{Skipped: true}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("look up head office: %w", err)
	}

	data := sampleData(time.Now().UTC())
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name  string
			value interface{}
		}{
			{"offices", data.offices},
			{"people", data.people},
			{"leaves", data.leaves},
			{"departments", data.departments},
			{"employees", data.employees},
			{"employee leaves", data.employeeLeaves},
			{"attendances", data.attendances},
			{"employee attendances", data.entries},
		}
		for _, step := range steps {
			if err := tx.Create(step.value).Error; err != nil {
				return fmt.Errorf("insert %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to seed sample data", "error", err)
		return nil, err
	}

	summary := &Summary{
		Offices:             len(data.offices),
		Departments:         len(data.departments),
		People:              len(data.people),
		Employees:           len(data.employees),
		Leaves:              len(data.leaves),
		EmployeeLeaves:      len(data.employeeLeaves),
		Attendances:         len(data.attendances),
		EmployeeAttendances: len(data.entries),
	}
	s.logger.Info("seeded sample data",
		"people", summary.People,
		"employees", summary.Employees,
		"attendances", summary.Attendances)
	return summary, nil
}

type dataset struct {
	offices        []*office.Office
	departments    []*department.Department
	people         []*person.Person
	employees      []*employee.Employee
	leaves         []*leave.Leave
	employeeLeaves []*employeeleave.EmployeeLeave
	attendances    []*attendance.Attendance
	entries        []*employeeattendance.EmployeeAttendance
}

func sampleData(now time.Time) dataset {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	str := func(s string) *string { return &s }
	today := day(now)

	hq := &office.Office{ID: uuid.New(), Name: "Head Office", Location: "Jakarta", PhoneNumber: "+62 21 555 0100", Email: HeadOfficeEmail}

	manager := "Grace Hopper"
	engineering := &department.Department{ID: uuid.New(), OfficeID: hq.ID, Name: "Engineering", Manager: &manager, Description: "Product engineering"}
	people := &department.Department{ID: uuid.New(), OfficeID: hq.ID, Name: "People Operations", Description: "HR and payroll"}

	ada := &person.Person{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", DateOfBirth: time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC), Email: "ada@example.com"}
	grace := &person.Person{ID: uuid.New(), FirstName: "Grace", LastName: "Hopper", DateOfBirth: time.Date(1906, 12, 9, 0, 0, 0, 0, time.UTC), Email: "grace@example.com"}
	alan := &person.Person{ID: uuid.New(), FirstName: "Alan", LastName: "Turing", DateOfBirth: time.Date(1912, 6, 23, 0, 0, 0, 0, time.UTC), Email: "alan@example.com"}

	adaEmp := &employee.Employee{ID: uuid.New(), PersonID: ada.ID, DepartmentID: engineering.ID, WorkEmail: "ada@work.example.com"}
	graceEmp := &employee.Employee{ID: uuid.New(), PersonID: grace.ID, DepartmentID: engineering.ID, WorkEmail: "grace@work.example.com"}
	alanEmp := &employee.Employee{ID: uuid.New(), PersonID: alan.ID, DepartmentID: people.ID, WorkEmail: "alan@work.example.com"}

	annual := &leave.Leave{ID: uuid.New(), LeaveType: "Annual", MaxDaysAllowed: 12, RemainingLeaveDays: 12, Description: "Paid annual leave"}
	sick := &leave.Leave{ID: uuid.New(), LeaveType: "Sick", MaxDaysAllowed: 10, RemainingLeaveDays: 10, Description: "Medical leave with a certificate"}
	unpaid := &leave.Leave{ID: uuid.New(), LeaveType: "Unpaid", MaxDaysAllowed: 30, RemainingLeaveDays: 30, Description: "Unpaid personal leave"}

	graceLeave := &employeeleave.EmployeeLeave{
		ID: uuid.New(), LeaveID: annual.ID, EmployeeID: graceEmp.ID,
		StartDate: today, EndDate: today.AddDate(0, 0, 2),
		IsActive: true, IsApproved: true,
	}

	standup := &attendance.Attendance{ID: uuid.New(), DepartmentID: engineering.ID, Date: today}
	owner := uuid.NullUUID{UUID: standup.ID, Valid: true}
	entries := []*employeeattendance.EmployeeAttendance{
		{ID: uuid.New(), AttendanceID: owner, EmployeeID: adaEmp.ID, TimeIn: str("09:00"), TimeOut: str("17:30"), Present: true, TotalWorkedHours: 8.5},
		{
			ID:              uuid.New(),
			AttendanceID:    owner,
			EmployeeID:      graceEmp.ID,
			EmployeeLeaveID: uuid.NullUUID{UUID: graceLeave.ID, Valid: true},
			Present:         false,
			Reason:          str("Annual leave"),
		},
	}

	return dataset{
		offices:        []*office.Office{hq},
		departments:    []*department.Department{engineering, people},
		people:         []*person.Person{ada, grace, alan},
		employees:      []*employee.Employee{adaEmp, graceEmp, alanEmp},
		leaves:         []*leave.Leave{annual, sick, unpaid},
		employeeLeaves: []*employeeleave.EmployeeLeave{graceLeave},
		attendances:    []*attendance.Attendance{standup},
		entries:        entries,
	}
}
