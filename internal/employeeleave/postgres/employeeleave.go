package postgres

import (
	"context"
	"log/slog"

	employeeleaveDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employeeleave"
	"github.com/frahmantamala/attendance-system/internal/core/sqlstore"
	"github.com/frahmantamala/attendance-system/internal/employeeleave"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var employeeLeavesTable = sqlstore.Table{
	Name:    "EmployeeLeaves",
	Key:     "Id",
	Columns: []string{"Id", "LeaveId", "EmployeeId", "StartDate", "EndDate", "IsActive", "IsApproved"},
}

type EmployeeLeaveRepository struct {
	store *sqlstore.Store[employeeleaveDatamodel.EmployeeLeave]
}

func NewEmployeeLeaveRepository(db *sqlx.DB, logger *slog.Logger) employeeleave.RepositoryAPI {
	return &EmployeeLeaveRepository{store: sqlstore.New[employeeleaveDatamodel.EmployeeLeave](db, employeeLeavesTable, logger)}
}

func (r *EmployeeLeaveRepository) GetAll(ctx context.Context) ([]*employeeleaveDatamodel.EmployeeLeave, error) {
	return r.store.GetAll(ctx)
}

func (r *EmployeeLeaveRepository) GetByID(ctx context.Context, id uuid.UUID) (*employeeleaveDatamodel.EmployeeLeave, error) {
	return r.store.GetByID(ctx, id)
}

func (r *EmployeeLeaveRepository) Add(ctx context.Context, record *employeeleaveDatamodel.EmployeeLeave) (uuid.UUID, error) {
	if err := r.store.Add(ctx, record); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *EmployeeLeaveRepository) Update(ctx context.Context, record *employeeleaveDatamodel.EmployeeLeave) (bool, error) {
	return r.store.Update(ctx, record)
}

func (r *EmployeeLeaveRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(ctx, id)
}
