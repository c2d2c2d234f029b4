package crud

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Repository is the accessor a Service reads and writes records through.
// GetByID returns nil for an unknown id.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Add(ctx context.Context, record *T) (uuid.UUID, error)
	Update(ctx context.Context, record *T) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Mapping converts between request bodies, records and responses.
type Mapping[T, C, U, R any] struct {
	FromCreate func(req C) *T
	FromUpdate func(id uuid.UUID, req U) *T
	ToResponse func(record *T) R
	// BeforeUpdate, when set, sees the stored record and the replacement
	// before it is written.
	BeforeUpdate func(existing, updated *T)
}

// Service implements GetAll/GetByID/Create/Update/Delete for one entity.
// Absence is reported as nil or false with a nil error; repository errors
// are logged and returned unchanged.
type Service[T, C, U, R any] struct {
	repo    Repository[T]
	mapping Mapping[T, C, U, R]
	logger  *slog.Logger

	singular string
	plural   string
}

func NewService[T, C, U, R any](repo Repository[T], mapping Mapping[T, C, U, R], logger *slog.Logger, singular, plural string) *Service[T, C, U, R] {
	return &Service[T, C, U, R]{
		repo:     repo,
		mapping:  mapping,
		logger:   logger,
		singular: singular,
		plural:   plural,
	}
}

func (s *Service[T, C, U, R]) GetAll(ctx context.Context) ([]R, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get "+s.plural+" from repository", "error", err)
		return nil, err
	}

	responses := make([]R, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.mapping.ToResponse(record))
	}
	return responses, nil
}

func (s *Service[T, C, U, R]) GetByID(ctx context.Context, id uuid.UUID) (*R, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get "+s.singular, "id", id, "error", err)
		return nil, err
	}
	if record == nil {
		s.logger.Info(s.singular+" not found", "id", id)
		return nil, nil
	}

	response := s.mapping.ToResponse(record)
	return &response, nil
}

func (s *Service[T, C, U, R]) Create(ctx context.Context, req C) (uuid.UUID, error) {
	id, err := s.repo.Add(ctx, s.mapping.FromCreate(req))
	if err != nil {
		s.logger.Error("failed to add "+s.singular, "error", err)
		return uuid.Nil, err
	}

	s.logger.Info(s.singular+" created", "id", id)
	return id, nil
}

// Update replaces the record and reports false, without writing, when no
// record has the given id.
func (s *Service[T, C, U, R]) Update(ctx context.Context, id uuid.UUID, req U) (bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get "+s.singular+" for update", "id", id, "error", err)
		return false, err
	}
	if existing == nil {
		s.logger.Info(s.singular+" not found for update", "id", id)
		return false, nil
	}

	record := s.mapping.FromUpdate(id, req)
	if s.mapping.BeforeUpdate != nil {
		s.mapping.BeforeUpdate(existing, record)
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		s.logger.Error("failed to update "+s.singular, "id", id, "error", err)
		return false, err
	}
	if !updated {
		s.logger.Warn(s.singular+" update affected no rows", "id", id)
	}
	return updated, nil
}

func (s *Service[T, C, U, R]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get "+s.singular+" for delete", "id", id, "error", err)
		return false, err
	}
	if existing == nil {
		s.logger.Info(s.singular+" not found for delete", "id", id)
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete "+s.singular, "id", id, "error", err)
		return false, err
	}
	if !deleted {
		s.logger.Warn(s.singular+" delete affected no rows", "id", id)
	}
	return deleted, nil
}
