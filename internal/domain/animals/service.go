package animals

import (
	"context"
	"time"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/txn"
)

type Service struct {
	repo Repository
	tx   txn.Runner
	now  func() time.Time
}

func NewService(repo Repository, tx txn.Runner) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	a := Animal{
		Name:        in.Name,
		Species:     in.Species,
		Breed:       in.Breed,
		Age:         in.Age,
		Gender:      in.Gender,
		ArrivalDate: in.ArrivalDate,
		Status:      in.Status,
	}
	if a.ArrivalDate.IsZero() {
		a.ArrivalDate = civil.Today(s.now())
	}
	if a.Status == "" {
		a.Status = StatusAvailable
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		id, err := s.repo.Create(ctx, a)
		a.ID = id
		return err
	})
	if err != nil {
		return Animal{}, apperrors.AsStorage("create animal", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.AsStorage("list animals", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, apperrors.AsStorage("get animal", err)
	}
	return a, nil
}

// Update aplica sólo los campos presentes en in.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Animal, error) {
	var out Animal
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		in.apply(&a)
		if err := s.repo.Update(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return Animal{}, apperrors.AsStorage("update animal", err)
	}
	return out, nil
}

// Delete borra el animal con sus historias clínicas y solicitudes.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	return apperrors.AsStorage("delete animal", err)
}
