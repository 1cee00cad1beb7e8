package medical

import (
	"context"

	"shelter-records/internal/domain/animals"
	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/txn"
)

// AnimalLookup es lo único que medical necesita de animals: verificar la FK.
type AnimalLookup interface {
	GetByID(ctx context.Context, id int64) (animals.Animal, error)
}

type Service struct {
	repo    Repository
	animals AnimalLookup
	tx      txn.Runner
}

func NewService(repo Repository, animals AnimalLookup, tx txn.Runner) *Service {
	return &Service{repo: repo, animals: animals, tx: tx}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	rec := Record{
		AnimalID:    in.AnimalID,
		Date:        in.Date,
		Description: in.Description,
		VetName:     in.VetName,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.animals.GetByID(ctx, rec.AnimalID); err != nil {
			return err
		}
		id, err := s.repo.Create(ctx, rec)
		rec.ID = id
		return err
	})
	if err != nil {
		return Record{}, apperrors.AsStorage("create medical record", err)
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.AsStorage("list medical records", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Record, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, apperrors.AsStorage("get medical record", err)
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Record, error) {
	var out Record
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.AnimalID != nil && *in.AnimalID != rec.AnimalID {
			if _, err := s.animals.GetByID(ctx, *in.AnimalID); err != nil {
				return err
			}
		}
		in.apply(&rec)
		if err := s.repo.Update(ctx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return Record{}, apperrors.AsStorage("update medical record", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	return apperrors.AsStorage("delete medical record", err)
}
