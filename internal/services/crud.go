package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/repos"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// CrudService is the uniform per-entity contract: create with validation,
// lookup, stable-order listing, partial update and hard delete. T is the
// stored record, C the creation payload, U the partial-update payload.
type CrudService[T, C, U any] interface {
	Create(ctx context.Context, in *C) (*T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, skip, limit int) ([]*T, error)
	Update(ctx context.Context, id uuid.UUID, in *U) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) (*T, error)
}

// BatchService is the transactional bulk surface offered by the high-volume
// entities (trips, locations, unsafe behaviours, model inputs).
type BatchService[C any] interface {
	BatchCreate(ctx context.Context, in []*C) (int, error)
	BatchDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// Hooks carries the entity-specific pieces of the shared CRUD flow. Only
// ValidateCreate, NewRecord and UpdateFields are mandatory.
type Hooks[T, C, U any] struct {
	Entity string

	// ValidateCreate checks required fields before anything touches the
	// store. Must return an *apierr.Error on failure.
	ValidateCreate func(in *C) error

	// NewRecord builds the row from the payload and assigns a fresh id.
	NewRecord func(in *C) (*T, error)

	// CheckRefs verifies foreign references inside the create transaction.
	CheckRefs func(ctx context.Context, tx *gorm.DB, in *C) error

	// UpdateFields maps the fields present in the payload to column updates.
	UpdateFields func(in *U) (map[string]any, error)

	// CheckUpdateRefs verifies foreign references changed by an update.
	CheckUpdateRefs func(ctx context.Context, tx *gorm.DB, in *U) error
}

type crudService[T, C, U any] struct {
	db    *gorm.DB
	log   *logger.Logger
	repo  repos.Crud[T]
	hooks Hooks[T, C, U]
}

func newCrudService[T, C, U any](db *gorm.DB, log *logger.Logger, repo repos.Crud[T], hooks Hooks[T, C, U]) *crudService[T, C, U] {
	return &crudService[T, C, U]{db: db, log: log, repo: repo, hooks: hooks}
}

func (s *crudService[T, C, U]) Create(ctx context.Context, in *C) (*T, error) {
	if in == nil {
		return nil, apierr.Validation("request body is required", nil)
	}
	if err := s.hooks.ValidateCreate(in); err != nil {
		return nil, err
	}
	rec, err := s.hooks.NewRecord(in)
	if err != nil {
		return nil, apierr.Wrap(err, "build "+s.hooks.Entity)
	}

	var out *T
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.hooks.CheckRefs != nil {
			if err := s.hooks.CheckRefs(ctx, tx, in); err != nil {
				return err
			}
		}
		created, err := s.repo.Create(ctx, tx, []*T{rec})
		if err != nil {
			return translateDBError(err)
		}
		out = created[0]
		return nil
	})
	if txErr != nil {
		e := apierr.Wrap(txErr, "create "+s.hooks.Entity)
		if e.Kind == apierr.KindInternal || e.Kind == apierr.KindUnavailable {
			s.log.Error("Create failed", "entity", s.hooks.Entity, "error", txErr)
		}
		return nil, e
	}
	return out, nil
}

func (s *crudService[T, C, U]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Wrap(translateDBError(err), "get "+s.hooks.Entity)
	}
	if rec == nil {
		return nil, apierr.NotFound(s.hooks.Entity+" not found", nil)
	}
	return rec, nil
}

func (s *crudService[T, C, U]) List(ctx context.Context, skip, limit int) ([]*T, error) {
	if limit > MaxListLimit {
		return nil, apierr.Validation("limit cannot exceed 100 items", nil)
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	recs, err := s.repo.List(ctx, nil, skip, limit)
	if err != nil {
		return nil, apierr.Wrap(translateDBError(err), "list "+s.hooks.Entity)
	}
	return recs, nil
}

func (s *crudService[T, C, U]) Update(ctx context.Context, id uuid.UUID, in *U) (*T, error) {
	if in == nil {
		return nil, apierr.Validation("request body is required", nil)
	}

	var out *T
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.GetByID(ctx, tx, id)
		if err != nil {
			return translateDBError(err)
		}
		if current == nil {
			return apierr.NotFound(s.hooks.Entity+" not found", nil)
		}
		fields, err := s.hooks.UpdateFields(in)
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			out = current
			return nil
		}
		if s.hooks.CheckUpdateRefs != nil {
			if err := s.hooks.CheckUpdateRefs(ctx, tx, in); err != nil {
				return err
			}
		}
		if err := s.repo.Update(ctx, tx, id, fields); err != nil {
			return translateDBError(err)
		}
		updated, err := s.repo.GetByID(ctx, tx, id)
		if err != nil {
			return translateDBError(err)
		}
		out = updated
		return nil
	})
	if txErr != nil {
		return nil, apierr.Wrap(txErr, "update "+s.hooks.Entity)
	}
	return out, nil
}

func (s *crudService[T, C, U]) Delete(ctx context.Context, id uuid.UUID) (*T, error) {
	var prior *T
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.GetByID(ctx, tx, id)
		if err != nil {
			return translateDBError(err)
		}
		if current == nil {
			return apierr.NotFound(s.hooks.Entity+" not found", nil)
		}
		if _, err := s.repo.DeleteByIDs(ctx, tx, []uuid.UUID{id}); err != nil {
			return translateDBError(err)
		}
		prior = current
		return nil
	})
	if txErr != nil {
		return nil, apierr.Wrap(txErr, "delete "+s.hooks.Entity)
	}
	return prior, nil
}

// crudBatchService adds the transactional bulk operations on top of the
// shared CRUD flow. The whole batch commits or none of it does.
type crudBatchService[T, C, U any] struct {
	*crudService[T, C, U]
}

func newCrudBatchService[T, C, U any](db *gorm.DB, log *logger.Logger, repo repos.Crud[T], hooks Hooks[T, C, U]) *crudBatchService[T, C, U] {
	return &crudBatchService[T, C, U]{newCrudService(db, log, repo, hooks)}
}

func (s *crudBatchService[T, C, U]) BatchCreate(ctx context.Context, in []*C) (int, error) {
	if len(in) == 0 {
		return 0, nil
	}
	recs := make([]*T, 0, len(in))
	for _, item := range in {
		if item == nil {
			return 0, apierr.Validation("batch items must not be null", nil)
		}
		if err := s.hooks.ValidateCreate(item); err != nil {
			return 0, err
		}
		rec, err := s.hooks.NewRecord(item)
		if err != nil {
			return 0, apierr.Wrap(err, "build "+s.hooks.Entity)
		}
		recs = append(recs, rec)
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.hooks.CheckRefs != nil {
			for _, item := range in {
				if err := s.hooks.CheckRefs(ctx, tx, item); err != nil {
					return err
				}
			}
		}
		if _, err := s.repo.Create(ctx, tx, recs); err != nil {
			return translateDBError(err)
		}
		return nil
	})
	if txErr != nil {
		e := apierr.Wrap(txErr, "batch create "+s.hooks.Entity)
		if e.Kind == apierr.KindInternal || e.Kind == apierr.KindUnavailable {
			s.log.Error("BatchCreate failed", "entity", s.hooks.Entity, "count", len(in), "error", txErr)
		}
		return 0, e
	}
	return len(recs), nil
}

// BatchDelete removes every matching id in one transaction; ids with no
// matching row are ignored.
func (s *crudBatchService[T, C, U]) BatchDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.DeleteByIDs(ctx, tx, ids)
		if err != nil {
			return translateDBError(err)
		}
		deleted = n
		return nil
	})
	if txErr != nil {
		return 0, apierr.Wrap(txErr, "batch delete "+s.hooks.Entity)
	}
	return deleted, nil
}
