package volunteers

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
	return &Service{repo: repo, tx: tx, now: time.Now}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Volunteer, error) {
	v := Volunteer{
		Name:          in.Name,
		ContactInfo:   in.ContactInfo,
		JoinDate:      in.JoinDate,
		AssignedTasks: in.AssignedTasks,
	}
	if v.JoinDate.IsZero() {
		v.JoinDate = civil.Today(s.now())
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		id, err := s.repo.Create(ctx, v)
		v.ID = id
		return err
	})
	if err != nil {
		return Volunteer{}, apperrors.AsStorage("create volunteer", err)
	}
	return v, nil
}

func (s *Service) List(ctx context.Context) ([]Volunteer, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.AsStorage("list volunteers", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Volunteer, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Volunteer{}, apperrors.AsStorage("get volunteer", err)
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Volunteer, error) {
	var out Volunteer
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		v, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		in.apply(&v)
		if err := s.repo.Update(ctx, v); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return Volunteer{}, apperrors.AsStorage("update volunteer", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	return apperrors.AsStorage("delete volunteer", err)
}
