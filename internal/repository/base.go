package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
)

// BaseRepository provides shared persistence behavior. Deletes are hard
// deletes; the schema keeps no tombstones. DupErr is the domain error a
// unique-index violation translates to, so the storage constraint stays
// authoritative even when two writers pass the service-level pre-check
// concurrently.
type BaseRepository[T any] struct {
	DB     *gorm.DB
	DupErr error
}

func (r *BaseRepository[T]) translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && r.DupErr != nil:
		return r.DupErr
	default:
		return err
	}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.translate(r.DB.WithContext(ctx).Create(entity).Error)
}

func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.translate(r.DB.WithContext(ctx).Save(entity).Error)
}

func (r *BaseRepository[T]) Delete(ctx context.Context, entity *T) error {
	return r.translate(r.DB.WithContext(ctx).Delete(entity).Error)
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &entity, nil
}

func (r *BaseRepository[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.DB.WithContext(ctx).Find(&entities).Error
	return entities, r.translate(err)
}

// FindByIdent looks an entity up by identifier in either UUID form.
// Identifiers that are not valid keys fall back to a 1-based ordinal
// position into the listing; non-positive, non-integer and out-of-range
// positions yield not-found.
func (r *BaseRepository[T]) FindByIdent(ctx context.Context, raw string) (*T, error) {
	if id, err := ident.Normalize(raw); err == nil {
		entity, err := r.FindByID(ctx, id)
		if err == nil {
			return entity, nil
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
	}

	pos, ok := ident.Position(raw)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	entities, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if pos > len(entities) {
		return nil, apperr.ErrNotFound
	}
	return &entities[pos-1], nil
}
