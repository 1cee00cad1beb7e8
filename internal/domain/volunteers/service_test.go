package volunteers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/txn"
)

type testRepo struct {
	byID   map[int64]Volunteer
	nextID int64
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Volunteer{}} }

func (r *testRepo) Create(ctx context.Context, v Volunteer) (int64, error) {
	r.nextID++
	v.ID = r.nextID
	r.byID[v.ID] = v
	return v.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Volunteer, error) {
	v, ok := r.byID[id]
	if !ok {
		return Volunteer{}, apperrors.NotFound("Volunteer", id)
	}
	return v, nil
}

func (r *testRepo) List(ctx context.Context) ([]Volunteer, error) {
	out := make([]Volunteer, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, v Volunteer) error {
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("Volunteer", id)
	}
	delete(r.byID, id)
	return nil
}

func TestService_CreateDefaultsJoinDate(t *testing.T) {
	svc := NewService(newTestRepo(), txn.Passthrough)
	svc.now = func() time.Time { return time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC) }

	in, err := ParseCreate(fields.Map{"Name": "Vera", "AssignedTasks": "walks"})
	require.NoError(t, err)

	v, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", v.JoinDate.String())
	assert.Equal(t, "walks", v.AssignedTasks)
}

func TestParseCreate_InvalidJoinDate(t *testing.T) {
	_, err := ParseCreate(fields.Map{"Name": "Vera", "JoinDate": "2024-13-01"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidType))
	assert.Equal(t, "JoinDate must be date (YYYY-MM-DD).", err.Error())
}

func TestService_UpdateAndDelete(t *testing.T) {
	svc := NewService(newTestRepo(), txn.Passthrough)

	v, err := svc.Create(context.Background(), CreateInput{Name: "Vera", ContactInfo: "555"})
	require.NoError(t, err)

	in, err := ParseUpdate(fields.Map{"AssignedTasks": "feeding", "ContactInfo": nil})
	require.NoError(t, err)
	got, err := svc.Update(context.Background(), v.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "feeding", got.AssignedTasks)
	assert.Equal(t, "", got.ContactInfo)
	assert.Equal(t, "Vera", got.Name)

	require.NoError(t, svc.Delete(context.Background(), v.ID))
	assert.True(t, apperrors.Is(svc.Delete(context.Background(), v.ID), apperrors.KindNotFound))
}
