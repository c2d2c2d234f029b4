package postgres

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/attendance-system/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/attendance"
	employeeattendanceDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeattendance"
	"github.com/frahmantamala/attendance-system/internal/core/sqlstore"
	employeeattendancePostgres "github.com/frahmantamala/attendance-system/internal/employeeattendance/postgres"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const attendanceIDColumn = "AttendanceId"

var attendancesTable = sqlstore.Table{
	Name:    "Attendances",
	Key:     "Id",
	Columns: []string{"Id", "DepartmentId", "Date"},
}

// AttendanceRepository persists an attendance together with its entries. Every
// method runs as one transaction covering the parent row and all children.
type AttendanceRepository struct {
	db          *sqlx.DB
	attendances *sqlstore.Store[attendanceDatamodel.Attendance]
	entries     *sqlstore.Store[employeeattendanceDatamodel.EmployeeAttendance]
	logger      *slog.Logger
}

func NewAttendanceRepository(db *sqlx.DB, logger *slog.Logger) attendance.RepositoryAPI {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceRepository{
		db:          db,
		attendances: sqlstore.New[attendanceDatamodel.Attendance](db, attendancesTable, logger),
		entries:     sqlstore.New[employeeattendanceDatamodel.EmployeeAttendance](db, employeeattendancePostgres.EmployeeAttendancesTable, logger),
		logger:      logger.With("table", attendancesTable.Name),
	}
}

func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*attendanceDatamodel.Attendance, error) {
	var records []*attendanceDatamodel.Attendance
	err := sqlstore.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		if records, err = r.attendances.GetAllTx(ctx, tx); err != nil {
			return err
		}
		for _, record := range records {
			if err := r.loadEntries(ctx, tx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("failed to retrieve attendances", sqlstore.ErrorAttrs(err)...)
		return nil, err
	}

	r.logger.Info("retrieved attendances", "count", len(records))
	return records, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*attendanceDatamodel.Attendance, error) {
	var record *attendanceDatamodel.Attendance
	err := sqlstore.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		if record, err = r.attendances.GetByIDTx(ctx, tx, id); err != nil || record == nil {
			return err
		}
		return r.loadEntries(ctx, tx, record)
	})
	if err != nil {
		r.logger.Error("failed to retrieve attendance", append(sqlstore.ErrorAttrs(err), "id", id)...)
		return nil, err
	}
	if record == nil {
		r.logger.Info("attendance not found", "id", id)
		return nil, nil
	}

	r.logger.Info("retrieved attendance", "id", id, "entries", len(record.EmployeeAttendances))
	return record, nil
}

// Add inserts the attendance row and every nested entry.
func (r *AttendanceRepository) Add(ctx context.Context, record *attendanceDatamodel.Attendance) (uuid.UUID, error) {
	err := sqlstore.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.attendances.AddTx(ctx, tx, record); err != nil {
			return err
		}
		return r.insertEntries(ctx, tx, record)
	})
	if err != nil {
		r.logger.Error("failed to add attendance", append(sqlstore.ErrorAttrs(err), "id", record.ID)...)
		return uuid.Nil, err
	}

	r.logger.Info("added attendance", "id", record.ID, "entries", len(record.EmployeeAttendances))
	return record.ID, nil
}

// Update replaces the attendance row and its entry list. Nothing is written
// when the attendance does not exist.
func (r *AttendanceRepository) Update(ctx context.Context, record *attendanceDatamodel.Attendance) (bool, error) {
	var updated bool
	err := sqlstore.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		if updated, err = r.attendances.UpdateTx(ctx, tx, record); err != nil || !updated {
			return err
		}
		if _, err := r.entries.DeleteByTx(ctx, tx, attendanceIDColumn, record.ID); err != nil {
			return err
		}
		return r.insertEntries(ctx, tx, record)
	})
	if err != nil {
		r.logger.Error("failed to update attendance", append(sqlstore.ErrorAttrs(err), "id", record.ID)...)
		return false, err
	}

	r.logger.Info("updated attendance", "id", record.ID, "affected", updated, "entries", len(record.EmployeeAttendances))
	return updated, nil
}

// Delete removes the attendance and its entries.
func (r *AttendanceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := sqlstore.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		// the foreign key cascades too; deleting first keeps this independent
		// of the connection's foreign key setting
		if _, err := r.entries.DeleteByTx(ctx, tx, attendanceIDColumn, id); err != nil {
			return err
		}
		var err error
		deleted, err = r.attendances.DeleteTx(ctx, tx, id)
		return err
	})
	if err != nil {
		r.logger.Error("failed to delete attendance", append(sqlstore.ErrorAttrs(err), "id", id)...)
		return false, err
	}

	r.logger.Info("deleted attendance", "id", id, "affected", deleted)
	return deleted, nil
}

func (r *AttendanceRepository) loadEntries(ctx context.Context, tx *sqlx.Tx, record *attendanceDatamodel.Attendance) error {
	entries, err := r.entries.ListByTx(ctx, tx, attendanceIDColumn, record.ID)
	if err != nil {
		return err
	}
	record.EmployeeAttendances = entries
	return nil
}

func (r *AttendanceRepository) insertEntries(ctx context.Context, tx *sqlx.Tx, record *attendanceDatamodel.Attendance) error {
	for _, entry := range record.EmployeeAttendances {
		entry.AttendanceID = uuid.NullUUID{UUID: record.ID, Valid: true}
		if err := r.entries.AddTx(ctx, tx, entry); err != nil {
			return err
		}
	}
	return nil
}
