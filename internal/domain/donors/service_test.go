package donors

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/metrics"
	"shelter-records/internal/platform/txn"
)

type testRepo struct {
	byID   map[int64]Donor
	nextID int64
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Donor{}} }

func (r *testRepo) Create(ctx context.Context, d Donor) (int64, error) {
	r.nextID++
	d.ID = r.nextID
	r.byID[d.ID] = d
	return d.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Donor, error) {
	d, ok := r.byID[id]
	if !ok {
		return Donor{}, apperrors.NotFound("Donor", id)
	}
	return d, nil
}

func (r *testRepo) List(ctx context.Context) ([]Donor, error) {
	out := make([]Donor, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, d Donor) error {
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("Donor", id)
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) FindByName(ctx context.Context, name string) (Donor, bool, error) {
	for id := int64(1); id <= r.nextID; id++ {
		if d, ok := r.byID[id]; ok && d.Name == name {
			return d, true, nil
		}
	}
	return Donor{}, false, nil
}

func (r *testRepo) LockName(ctx context.Context, name string) error { return nil }

func TestService_CreateCountsAdminSource(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc := NewService(newTestRepo(), txn.Passthrough, m)

	in, err := ParseCreate(fields.Map{"Name": "Ann", "ContactInfo": nil})
	require.NoError(t, err)

	d, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "", d.ContactInfo)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DonorsCreated.WithLabelValues(metrics.DonorSourceAdmin)))
}

func TestParseCreate_RequiresName(t *testing.T) {
	_, err := ParseCreate(fields.Map{"ContactInfo": "x"})
	require.Error(t, err)
	assert.Equal(t, "Name is required.", err.Error())
}

func TestService_UpdatePartial(t *testing.T) {
	svc := NewService(newTestRepo(), txn.Passthrough, nil)

	d, err := svc.Create(context.Background(), CreateInput{Name: "Ann", ContactInfo: "ann@x"})
	require.NoError(t, err)

	in, err := ParseUpdate(fields.Map{"Name": "  ", "ContactInfo": "new@x"})
	require.NoError(t, err)
	got, err := svc.Update(context.Background(), d.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "new@x", got.ContactInfo)

	_, err = svc.Update(context.Background(), 77, UpdateInput{})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestParse_RejectsNonScalarText(t *testing.T) {
	_, err := ParseCreate(fields.Map{"Name": map[string]any{"a": 1}})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidType))
	assert.Equal(t, "Name must be string.", err.Error())

	_, err = ParseUpdate(fields.Map{"ContactInfo": []any{"x"}})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidType))
}
