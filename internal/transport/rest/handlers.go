package rest

import (
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/attendance"
	attendancePostgres "github.com/frahmantamala/attendance-system/internal/attendance/postgres"
	"github.com/frahmantamala/attendance-system/internal/department"
	departmentPostgres "github.com/frahmantamala/attendance-system/internal/department/postgres"
	"github.com/frahmantamala/attendance-system/internal/employee"
	employeePostgres "github.com/frahmantamala/attendance-system/internal/employee/postgres"
	"github.com/frahmantamala/attendance-system/internal/employeeattendance"
	employeeattendancePostgres "github.com/frahmantamala/attendance-system/internal/employeeattendance/postgres"
	"github.com/frahmantamala/attendance-system/internal/employeeleave"
	employeeleavePostgres "github.com/frahmantamala/attendance-system/internal/employeeleave/postgres"
	"github.com/frahmantamala/attendance-system/internal/leave"
	leavePostgres "github.com/frahmantamala/attendance-system/internal/leave/postgres"
	"github.com/frahmantamala/attendance-system/internal/office"
	officePostgres "github.com/frahmantamala/attendance-system/internal/office/postgres"
	"github.com/frahmantamala/attendance-system/internal/person"
	personPostgres "github.com/frahmantamala/attendance-system/internal/person/postgres"
	"github.com/frahmantamala/attendance-system/internal/transport"
	"github.com/jmoiron/sqlx"
)

// NewHandlers wires repository, service and handler for every resource.
func NewHandlers(db *sqlx.DB, logger *slog.Logger) Handlers {
	base := transport.NewBaseHandler(logger)

	return Handlers{
		Person: person.NewHandler(base,
			person.NewService(personPostgres.NewPersonRepository(db, logger), logger)),
		Office: office.NewHandler(base,
			office.NewService(officePostgres.NewOfficeRepository(db, logger), logger)),
		Department: department.NewHandler(base,
			department.NewService(departmentPostgres.NewDepartmentRepository(db, logger), logger)),
		Leave: leave.NewHandler(base,
			leave.NewService(leavePostgres.NewLeaveRepository(db, logger), logger)),
		Employee: employee.NewHandler(base,
			employee.NewService(employeePostgres.NewEmployeeRepository(db, logger), logger)),
		EmployeeLeave: employeeleave.NewHandler(base,
			employeeleave.NewService(employeeleavePostgres.NewEmployeeLeaveRepository(db, logger), logger)),
		EmployeeAttendance: employeeattendance.NewHandler(base,
			employeeattendance.NewService(employeeattendancePostgres.NewEmployeeAttendanceRepository(db, logger), logger)),
		Attendance: attendance.NewHandler(base,
			attendance.NewService(attendancePostgres.NewAttendanceRepository(db, logger), logger)),
	}
}
