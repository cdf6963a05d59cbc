package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deppfellow/northwind/internal/dao"
	"github.com/deppfellow/northwind/internal/errs"
)

// Store is the slice of dao.Engine the services depend on.
type Store[T any, K dao.Key] interface {
	GetAll(ctx context.Context) ([]T, error)
	Find(ctx context.Context, id K) (T, bool, error)
	Add(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id K) error
	Count(ctx context.Context) (int64, error)
}

// EntityService exposes one table to the HTTP layer.
//
// The engine treats a missing row on update or delete as a no-op; here it
// becomes a 404 so API clients can tell the difference.
type EntityService[T any, K dao.Key] struct {
	name  string
	store Store[T, K]
}

// NewEntityService names the entity ("customer", "shipper", ...) for
// messages and error codes.
func NewEntityService[T any, K dao.Key](name string, store Store[T, K]) *EntityService[T, K] {
	return &EntityService[T, K]{name: name, store: store}
}

func (s *EntityService[T, K]) List(ctx context.Context) ([]T, error) {
	return s.store.GetAll(ctx)
}

func (s *EntityService[T, K]) Get(ctx context.Context, id K) (T, error) {
	entity, found, err := s.store.Find(ctx, id)
	if err != nil {
		return entity, err
	}
	if !found {
		return entity, s.notFound(id)
	}
	return entity, nil
}

// Create inserts entity and returns it with its identifier set.
func (s *EntityService[T, K]) Create(ctx context.Context, entity T) (T, error) {
	created, err := s.store.Add(ctx, entity)
	if err != nil {
		return created, err
	}

	zerolog.Ctx(ctx).Info().
		Str("entity", s.name).
		Msg("entity created")

	return created, nil
}

// Update replaces every value column of the entity identified by id.
func (s *EntityService[T, K]) Update(ctx context.Context, id K, entity T) (T, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return entity, err
	}
	if err := s.store.Update(ctx, entity); err != nil {
		return entity, err
	}
	return entity, nil
}

func (s *EntityService[T, K]) Delete(ctx context.Context, id K) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *EntityService[T, K]) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

func (s *EntityService[T, K]) notFound(id K) error {
	code := strings.ToUpper(s.name) + "_NOT_FOUND"
	return errs.NewNotFoundError(fmt.Sprintf("%s %v not found", s.name, id), false, &code)
}
