package postgres

import (
	"context"
	"log/slog"

	leaveDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/leave"
	"github.com/frahmantamala/attendance-system/internal/core/sqlstore"
	"github.com/frahmantamala/attendance-system/internal/leave"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var leavesTable = sqlstore.Table{
	Name:    "Leaves",
	Key:     "Id",
	Columns: []string{"Id", "LeaveType", "MaxDaysAllowed", "RemainingLeaveDays", "Description"},
}

type LeaveRepository struct {
	store *sqlstore.Store[leaveDatamodel.Leave]
}

func NewLeaveRepository(db *sqlx.DB, logger *slog.Logger) leave.RepositoryAPI {
	return &LeaveRepository{store: sqlstore.New[leaveDatamodel.Leave](db, leavesTable, logger)}
}

func (r *LeaveRepository) GetAll(ctx context.Context) ([]*leaveDatamodel.Leave, error) {
	return r.store.GetAll(ctx)
}

func (r *LeaveRepository) GetByID(ctx context.Context, id uuid.UUID) (*leaveDatamodel.Leave, error) {
	return r.store.GetByID(ctx, id)
}

func (r *LeaveRepository) Add(ctx context.Context, record *leaveDatamodel.Leave) (uuid.UUID, error) {
	if err := r.store.Add(ctx, record); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *LeaveRepository) Update(ctx context.Context, record *leaveDatamodel.Leave) (bool, error) {
	return r.store.Update(ctx, record)
}

func (r *LeaveRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(ctx, id)
}
