package adoptions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/domain/animals"
	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/txn"
)

type testRepo struct {
	byID   map[int64]Application
	nextID int64
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Application{}} }

func (r *testRepo) Create(ctx context.Context, a Application) (int64, error) {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return Application{}, apperrors.NotFound("Adoption application", id)
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Application, error) {
	out := make([]Application, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Application) error {
	// igual que sqlstore: animal_name no se actualiza
	prev := r.byID[a.ID]
	a.AnimalName = prev.AnimalName
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("Adoption application", id)
	}
	delete(r.byID, id)
	return nil
}

type animalSet map[int64]animals.Animal

func (s animalSet) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	a, ok := s[id]
	if !ok {
		return animals.Animal{}, apperrors.NotFound("Animal", id)
	}
	return a, nil
}

func newTestService(repo Repository, known animalSet) *Service {
	s := NewService(repo, known, txn.Passthrough)
	s.now = func() time.Time { return time.Date(2024, 7, 4, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestParseCreate_MissingFieldNamesFormKey(t *testing.T) {
	_, err := ParseCreate(fields.Map{
		"adoptAnimal":     "1",
		"adoptAnimalName": "Rex",
		"adoptName":       "Ann",
		"adoptContact":    "",
		"adoptAddress":    "Main St",
	})
	require.Error(t, err)
	assert.Equal(t, "adoptContact is required.", err.Error())
}

func TestService_SubmitDefaults(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, animalSet{1: {ID: 1, Name: "Rex", Status: animals.StatusAvailable}})

	app, err := svc.Submit(context.Background(), CreateInput{
		AnimalID:         1,
		AnimalName:       "Rex",
		ApplicantName:    "Ann",
		ApplicantContact: "555",
		ApplicantAddress: "Main St",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, app.Status)
	assert.Equal(t, "2024-07-04", app.ApplicationDate.String())

	_, err = svc.Submit(context.Background(), CreateInput{AnimalID: 99})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestService_StatusChangeLeavesAnimalUntouched(t *testing.T) {
	repo := newTestRepo()
	known := animalSet{1: {ID: 1, Name: "Rex", Status: animals.StatusAvailable}}
	svc := newTestService(repo, known)

	app, err := svc.Submit(context.Background(), CreateInput{AnimalID: 1, AnimalName: "Rex", ApplicantName: "Ann", ApplicantContact: "555", ApplicantAddress: "Main St"})
	require.NoError(t, err)

	in, err := ParseUpdate(fields.Map{"Status": "Approved", "ApplicantName": ""})
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), app.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Approved", got.Status)
	assert.Equal(t, "Ann", got.ApplicantName)
	assert.Equal(t, animals.StatusAvailable, known[1].Status)
}
