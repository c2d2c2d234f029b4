package postgres

import (
	"context"
	"log/slog"

	officeDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/office"
	"github.com/frahmantamala/attendance-system/internal/core/sqlstore"
	"github.com/frahmantamala/attendance-system/internal/office"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var officesTable = sqlstore.Table{
	Name:    "Offices",
	Key:     "Id",
	Columns: []string{"Id", "Name", "Location", "PhoneNumber", "Email"},
}

type OfficeRepository struct {
	store *sqlstore.Store[officeDatamodel.Office]
}

func NewOfficeRepository(db *sqlx.DB, logger *slog.Logger) office.RepositoryAPI {
	return &OfficeRepository{store: sqlstore.New[officeDatamodel.Office](db, officesTable, logger)}
}

func (r *OfficeRepository) GetAll(ctx context.Context) ([]*officeDatamodel.Office, error) {
	return r.store.GetAll(ctx)
}

func (r *OfficeRepository) GetByID(ctx context.Context, id uuid.UUID) (*officeDatamodel.Office, error) {
	return r.store.GetByID(ctx, id)
}

func (r *OfficeRepository) Add(ctx context.Context, record *officeDatamodel.Office) (uuid.UUID, error) {
	if err := r.store.Add(ctx, record); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *OfficeRepository) Update(ctx context.Context, record *officeDatamodel.Office) (bool, error) {
	return r.store.Update(ctx, record)
}

func (r *OfficeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(ctx, id)
}
