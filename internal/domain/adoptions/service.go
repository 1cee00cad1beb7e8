package adoptions

import (
	"context"
	"time"

	"shelter-records/internal/domain/animals"
	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/txn"
)

type AnimalLookup interface {
	GetByID(ctx context.Context, id int64) (animals.Animal, error)
}

// Service no toca el Status del animal: aprobar una solicitud es
// independiente de marcar al animal como adoptado.
type Service struct {
	repo    Repository
	animals AnimalLookup
	tx      txn.Runner
	now     func() time.Time
}

func NewService(repo Repository, animals AnimalLookup, tx txn.Runner) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		tx:      tx,
		now:     time.Now,
	}
}

// Submit registra una solicitud en estado Pending con fecha de hoy.
func (s *Service) Submit(ctx context.Context, in CreateInput) (Application, error) {
	app := Application{
		AnimalID:         in.AnimalID,
		AnimalName:       in.AnimalName,
		ApplicantName:    in.ApplicantName,
		ApplicantContact: in.ApplicantContact,
		ApplicantAddress: in.ApplicantAddress,
		ApplicationDate:  civil.Today(s.now()),
		Status:           StatusPending,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.animals.GetByID(ctx, app.AnimalID); err != nil {
			return err
		}
		id, err := s.repo.Create(ctx, app)
		app.ID = id
		return err
	})
	if err != nil {
		return Application{}, apperrors.AsStorage("submit adoption application", err)
	}
	return app, nil
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.AsStorage("list adoption applications", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, apperrors.AsStorage("get adoption application", err)
	}
	return app, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Application, error) {
	var out Application
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		app, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.AnimalID != nil && *in.AnimalID != app.AnimalID {
			if _, err := s.animals.GetByID(ctx, *in.AnimalID); err != nil {
				return err
			}
		}
		in.apply(&app)
		if err := s.repo.Update(ctx, app); err != nil {
			return err
		}
		out = app
		return nil
	})
	if err != nil {
		return Application{}, apperrors.AsStorage("update adoption application", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	return apperrors.AsStorage("delete adoption application", err)
}
