package donors

import (
	"context"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/metrics"
	"shelter-records/internal/platform/txn"
)

type Service struct {
	repo    Repository
	tx      txn.Runner
	metrics *metrics.Metrics
}

func NewService(repo Repository, tx txn.Runner, m *metrics.Metrics) *Service {
	return &Service{repo: repo, tx: tx, metrics: m}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Donor, error) {
	d := Donor{Name: in.Name, ContactInfo: in.ContactInfo}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		id, err := s.repo.Create(ctx, d)
		d.ID = id
		return err
	})
	if err != nil {
		return Donor{}, apperrors.AsStorage("create donor", err)
	}
	s.metrics.IncDonorCreated(metrics.DonorSourceAdmin)
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]Donor, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.AsStorage("list donors", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Donor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Donor{}, apperrors.AsStorage("get donor", err)
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Donor, error) {
	var out Donor
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		d, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			d.Name = *in.Name
		}
		if in.ContactInfo != nil {
			d.ContactInfo = *in.ContactInfo
		}
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return Donor{}, apperrors.AsStorage("update donor", err)
	}
	return out, nil
}

// Delete borra el donante y todas sus donaciones.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	return apperrors.AsStorage("delete donor", err)
}
