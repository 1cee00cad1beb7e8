package donations

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/domain/donors"
	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/metrics"
	"shelter-records/internal/platform/txn"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Donation
	nextID int64
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Donation{}} }

func (r *testRepo) Create(ctx context.Context, d Donation) (int64, error) {
	r.nextID++
	d.ID = r.nextID
	r.byID[d.ID] = d
	return d.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Donation, error) {
	d, ok := r.byID[id]
	if !ok {
		return Donation{}, apperrors.NotFound("Donation", id)
	}
	return d, nil
}

func (r *testRepo) List(ctx context.Context) ([]Donation, error) {
	out := make([]Donation, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if d, ok := r.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, d Donation) error {
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("Donation", id)
	}
	delete(r.byID, id)
	return nil
}

type testDonors struct {
	byID   map[int64]donors.Donor
	nextID int64
	locked []string
}

func newTestDonors() *testDonors { return &testDonors{byID: map[int64]donors.Donor{}} }

func (r *testDonors) Create(ctx context.Context, d donors.Donor) (int64, error) {
	r.nextID++
	d.ID = r.nextID
	r.byID[d.ID] = d
	return d.ID, nil
}

func (r *testDonors) GetByID(ctx context.Context, id int64) (donors.Donor, error) {
	d, ok := r.byID[id]
	if !ok {
		return donors.Donor{}, apperrors.NotFound("Donor", id)
	}
	return d, nil
}

func (r *testDonors) List(ctx context.Context) ([]donors.Donor, error) { return nil, nil }

func (r *testDonors) Update(ctx context.Context, d donors.Donor) error {
	r.byID[d.ID] = d
	return nil
}

func (r *testDonors) Delete(ctx context.Context, id int64) error { return nil }

func (r *testDonors) FindByName(ctx context.Context, name string) (donors.Donor, bool, error) {
	for id := int64(1); id <= r.nextID; id++ {
		if d, ok := r.byID[id]; ok && d.Name == name {
			return d, true, nil
		}
	}
	return donors.Donor{}, false, nil
}

func (r *testDonors) LockName(ctx context.Context, name string) error {
	r.locked = append(r.locked, name)
	return nil
}

func newTestService(repo Repository, donorRepo donors.Repository, m *metrics.Metrics) *Service {
	s := NewService(repo, donorRepo, txn.Passthrough, m)
	s.now = func() time.Time { return time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC) }
	return s
}

func submit(t *testing.T, svc *Service, body fields.Map) Submission {
	t.Helper()
	in, err := ParseSubmission(body)
	require.NoError(t, err)
	res, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	return res
}

// -------------------------
// Tests
// -------------------------

func TestSubmit_SameNewNameReusesDonor(t *testing.T) {
	repo, dr := newTestRepo(), newTestDonors()
	m := metrics.New(prometheus.NewRegistry())
	svc := newTestService(repo, dr, m)

	first := submit(t, svc, fields.Map{"donorName": "Ann", "donationAmount": "10"})
	second := submit(t, svc, fields.Map{"donorName": "Ann", "donationAmount": "20"})

	assert.True(t, first.DonorCreated)
	assert.False(t, second.DonorCreated)
	assert.Equal(t, first.Donor.ID, second.Donor.ID)
	assert.Len(t, dr.byID, 1)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, d := range list {
		assert.Equal(t, first.Donor.ID, d.DonorID)
		assert.Equal(t, MethodOnline, d.Method)
		assert.Equal(t, "2024-05-05", d.Date.String())
	}

	assert.Equal(t, []string{"Ann", "Ann"}, dr.locked)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DonationsSubmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DonorsCreated.WithLabelValues(metrics.DonorSourceSubmission)))
}

func TestSubmit_ContactUpdateRules(t *testing.T) {
	repo, dr := newTestRepo(), newTestDonors()
	svc := newTestService(repo, dr, nil)

	res := submit(t, svc, fields.Map{"donorName": "Ann", "donorContact": "old@x", "donationAmount": "1"})

	submit(t, svc, fields.Map{"donorName": "Ann", "donorContact": "", "donationAmount": "1"})
	assert.Equal(t, "old@x", dr.byID[res.Donor.ID].ContactInfo)

	submit(t, svc, fields.Map{"donorName": "Ann", "donorContact": "new@x", "donationAmount": "1"})
	assert.Equal(t, "new@x", dr.byID[res.Donor.ID].ContactInfo)
}

func TestSubmit_AmountNormalized(t *testing.T) {
	svc := newTestService(newTestRepo(), newTestDonors(), nil)

	res := submit(t, svc, fields.Map{"donorName": "Ann", "donationAmount": "25.5"})
	assert.Equal(t, "25.50", res.Donation.Amount.StringFixed(2))
	assert.Equal(t, "25.50", toDonationResponse(res.Donation).Amount)
}

func TestParseSubmission_Errors(t *testing.T) {
	_, err := ParseSubmission(fields.Map{"donationAmount": "5"})
	require.Error(t, err)
	assert.Equal(t, "donorName is required.", err.Error())

	_, err = ParseSubmission(fields.Map{"donorName": "Ann"})
	require.Error(t, err)
	assert.Equal(t, "donationAmount is required.", err.Error())

	_, err = ParseSubmission(fields.Map{"donorName": "Ann", "donationAmount": "abc"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidAmount))
	assert.Equal(t, "Invalid donation amount.", err.Error())

	_, err = ParseSubmission(fields.Map{"donorName": "Ann", "donationAmount": "-3"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidAmount))
}

func TestUpdate_ChecksDonorExists(t *testing.T) {
	repo, dr := newTestRepo(), newTestDonors()
	svc := newTestService(repo, dr, nil)

	res := submit(t, svc, fields.Map{"donorName": "Ann", "donationAmount": "5"})

	in, err := ParseUpdate(fields.Map{"DonorID": 99})
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), res.Donation.ID, in)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	in, err = ParseUpdate(fields.Map{"Amount": "7.456", "Method": "Cash"})
	require.NoError(t, err)
	got, err := svc.Update(context.Background(), res.Donation.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "7.46", got.Amount.StringFixed(2))
	assert.Equal(t, "Cash", got.Method)
}
