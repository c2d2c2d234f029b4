package postgres

import (
	"context"
	"log/slog"

	departmentDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/department"
	"github.com/frahmantamala/attendance-system/internal/core/sqlstore"
	"github.com/frahmantamala/attendance-system/internal/department"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var departmentsTable = sqlstore.Table{
	Name:    "Departments",
	Key:     "Id",
	Columns: []string{"Id", "OfficeId", "Name", "Manager", "Description"},
}

type DepartmentRepository struct {
	store *sqlstore.Store[departmentDatamodel.Department]
}

func NewDepartmentRepository(db *sqlx.DB, logger *slog.Logger) department.RepositoryAPI {
	return &DepartmentRepository{store: sqlstore.New[departmentDatamodel.Department](db, departmentsTable, logger)}
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*departmentDatamodel.Department, error) {
	return r.store.GetAll(ctx)
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*departmentDatamodel.Department, error) {
	return r.store.GetByID(ctx, id)
}

func (r *DepartmentRepository) Add(ctx context.Context, record *departmentDatamodel.Department) (uuid.UUID, error) {
	if err := r.store.Add(ctx, record); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, record *departmentDatamodel.Department) (bool, error) {
	return r.store.Update(ctx, record)
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(ctx, id)
}
