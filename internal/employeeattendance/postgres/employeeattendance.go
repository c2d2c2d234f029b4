package postgres

import (
	"context"
	"log/slog"

	employeeattendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeattendance"
	"github.com/frahmantamala/attendance-system/internal/core/sqlstore"
	"github.com/frahmantamala/attendance-system/internal/employeeattendance"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// EmployeeAttendancesTable is shared with the attendance aggregate, which
// writes its nested entries through the same columns.
var EmployeeAttendancesTable = sqlstore.Table{
	Name:    "EmployeeAttendances",
	Key:     "Id",
	Columns: []string{"Id", "AttendanceId", "EmployeeId", "EmployeeLeaveId", "TimeIn", "TimeOut", "Present", "Reason", "TotalWorkedHours"},
}

type EmployeeAttendanceRepository struct {
	store *sqlstore.Store[employeeattendanceDatamodel.EmployeeAttendance]
}

func NewEmployeeAttendanceRepository(db *sqlx.DB, logger *slog.Logger) employeeattendance.RepositoryAPI {
	return &EmployeeAttendanceRepository{store: sqlstore.New[employeeattendanceDatamodel.EmployeeAttendance](db, EmployeeAttendancesTable, logger)}
}

func (r *EmployeeAttendanceRepository) GetAll(ctx context.Context) ([]*employeeattendanceDatamodel.EmployeeAttendance, error) {
	return r.store.GetAll(ctx)
}

func (r *EmployeeAttendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*employeeattendanceDatamodel.EmployeeAttendance, error) {
	return r.store.GetByID(ctx, id)
}

func (r *EmployeeAttendanceRepository) Add(ctx context.Context, record *employeeattendanceDatamodel.EmployeeAttendance) (uuid.UUID, error) {
	if err := r.store.Add(ctx, record); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *EmployeeAttendanceRepository) Update(ctx context.Context, record *employeeattendanceDatamodel.EmployeeAttendance) (bool, error) {
	return r.store.Update(ctx, record)
}

func (r *EmployeeAttendanceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(ctx, id)
}
