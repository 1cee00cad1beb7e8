package donations

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"shelter-records/internal/domain/donors"
	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/metrics"
	"shelter-records/internal/platform/txn"
)

var tracer = otel.Tracer("shelter-records/donations")

type Service struct {
	repo    Repository
	donors  donors.Repository
	tx      txn.Runner
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, donorRepo donors.Repository, tx txn.Runner, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		donors:  donorRepo,
		tx:      tx,
		metrics: m,
		now:     time.Now,
	}
}

// Submission es el resultado del flujo público de donación.
type Submission struct {
	Donor        donors.Donor
	Donation     Donation
	DonorCreated bool
}

// Submit busca el donante por nombre exacto (o lo crea), actualiza su
// contacto si vino uno distinto y no vacío, y registra la donación.
// Todo en una sola tx: si algo falla no queda ni el donante nuevo ni la donación.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Submission, error) {
	ctx, span := tracer.Start(ctx, "donations.Submit")
	defer span.End()

	var res Submission

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// dos envíos simultáneos con el mismo nombre nuevo crearían dos donantes
		if err := s.donors.LockName(ctx, in.DonorName); err != nil {
			return err
		}

		d, found, err := s.donors.FindByName(ctx, in.DonorName)
		if err != nil {
			return err
		}

		switch {
		case !found:
			d = donors.Donor{Name: in.DonorName, ContactInfo: in.DonorContact}
			id, err := s.donors.Create(ctx, d)
			if err != nil {
				return err
			}
			d.ID = id
			res.DonorCreated = true
		case in.DonorContact != "" && in.DonorContact != d.ContactInfo:
			// last-write-wins
			d.ContactInfo = in.DonorContact
			if err := s.donors.Update(ctx, d); err != nil {
				return err
			}
		}

		don := Donation{
			DonorID: d.ID,
			Amount:  in.Amount,
			Date:    civil.Today(s.now()),
			Method:  MethodOnline,
		}
		id, err := s.repo.Create(ctx, don)
		if err != nil {
			return err
		}
		don.ID = id

		res.Donor = d
		res.Donation = don
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "submit failed")
		return Submission{}, apperrors.AsStorage("submit donation", err)
	}
	span.SetAttributes(
		attribute.Int64("donor.id", res.Donor.ID),
		attribute.Bool("donor.created", res.DonorCreated),
	)

	if res.DonorCreated {
		s.metrics.IncDonorCreated(metrics.DonorSourceSubmission)
	}
	s.metrics.IncDonationSubmitted()
	return res, nil
}

func (s *Service) List(ctx context.Context) ([]Donation, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.AsStorage("list donations", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Donation, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Donation{}, apperrors.AsStorage("get donation", err)
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Donation, error) {
	var out Donation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		d, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.DonorID != nil && *in.DonorID != d.DonorID {
			if _, err := s.donors.GetByID(ctx, *in.DonorID); err != nil {
				return err
			}
		}
		in.apply(&d)
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return Donation{}, apperrors.AsStorage("update donation", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	return apperrors.AsStorage("delete donation", err)
}
