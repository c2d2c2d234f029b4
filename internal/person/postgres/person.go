package postgres

import (
	"context"
	"log/slog"

	personDatamodel "github.com/frahmantamala/attendance-system/internal/core/datamodel/person"
	"github.com/frahmantamala/attendance-system/internal/core/sqlstore"
	"github.com/frahmantamala/attendance-system/internal/person"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var peopleTable = sqlstore.Table{
	Name:    "People",
	Key:     "Id",
	Columns: []string{"Id", "FirstName", "LastName", "DateOfBirth", "Email"},
}

type PersonRepository struct {
	store *sqlstore.Store[personDatamodel.Person]
}

func NewPersonRepository(db *sqlx.DB, logger *slog.Logger) person.RepositoryAPI {
	return &PersonRepository{store: sqlstore.New[personDatamodel.Person](db, peopleTable, logger)}
}

func (r *PersonRepository) GetAll(ctx context.Context) ([]*personDatamodel.Person, error) {
	return r.store.GetAll(ctx)
}

func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*personDatamodel.Person, error) {
	return r.store.GetByID(ctx, id)
}

func (r *PersonRepository) Add(ctx context.Context, record *personDatamodel.Person) (uuid.UUID, error) {
	if err := r.store.Add(ctx, record); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *PersonRepository) Update(ctx context.Context, record *personDatamodel.Person) (bool, error) {
	return r.store.Update(ctx, record)
}

func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(ctx, id)
}
