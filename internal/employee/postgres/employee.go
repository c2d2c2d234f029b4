package postgres

import (
	"context"
	"log/slog"

	employeeDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/employee"
	"github.com/frahmantamala/attendance-system/internal/core/sqlstore"
	"github.com/frahmantamala/attendance-system/internal/employee"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var employeesTable = sqlstore.Table{
	Name:    "Employees",
	Key:     "Id",
	Columns: []string{"Id", "PersonId", "DepartmentId", "WorkEmail"},
}

type EmployeeRepository struct {
	store *sqlstore.Store[employeeDatamodel.Employee]
}

func NewEmployeeRepository(db *sqlx.DB, logger *slog.Logger) employee.RepositoryAPI {
	return &EmployeeRepository{store: sqlstore.New[employeeDatamodel.Employee](db, employeesTable, logger)}
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error) {
	return r.store.GetAll(ctx)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*employeeDatamodel.Employee, error) {
	return r.store.GetByID(ctx, id)
}

func (r *EmployeeRepository) Add(ctx context.Context, record *employeeDatamodel.Employee) (uuid.UUID, error) {
	if err := r.store.Add(ctx, record); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, record *employeeDatamodel.Employee) (bool, error) {
	return r.store.Update(ctx, record)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(ctx, id)
}
