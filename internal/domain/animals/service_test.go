package animals

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/txn"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Animal
	nextID int64
	failOn string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) (int64, error) {
	if r.failOn == "create" {
		return 0, errors.New("repo: disk full")
	}
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, apperrors.NotFound("Animal", id)
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return apperrors.NotFound("Animal", a.ID)
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("Animal", id)
	}
	delete(r.byID, id)
	return nil
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, txn.Passthrough)
	s.now = func() time.Time { return time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC) }
	return s
}

func TestParseCreate_RequiredFieldsInOrder(t *testing.T) {
	_, err := ParseCreate(fields.Map{})
	require.Error(t, err)
	assert.Equal(t, "Name is required.", err.Error())

	_, err = ParseCreate(fields.Map{"Name": "Rex", "Species": "  "})
	require.Error(t, err)
	assert.Equal(t, "Species is required.", err.Error())

	_, err = ParseCreate(fields.Map{"Name": "Rex", "Species": "Dog", "Age": "old"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidType))

	_, err = ParseCreate(fields.Map{"Name": "Rex", "Species": "Dog", "ArrivalDate": "01/02/2024"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidType))
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in, err := ParseCreate(fields.Map{"Name": "Rex", "Species": "Dog", "Age": "3"})
	require.NoError(t, err)

	a, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, StatusAvailable, a.Status)
	assert.Equal(t, "2024-06-01", a.ArrivalDate.String())
	require.NotNil(t, a.Age)
	assert.Equal(t, int64(3), *a.Age)

	got, err := svc.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestService_CreateWrapsRepoFailure(t *testing.T) {
	repo := newTestRepo()
	repo.failOn = "create"
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Name: "Rex", Species: "Dog"})
	assert.True(t, apperrors.Is(err, apperrors.KindStorage))
}

func TestService_UpdateOnlyTouchesPresentKeys(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	a, err := svc.Create(context.Background(), CreateInput{Name: "Rex", Species: "Dog", Breed: "Lab", Gender: "Male"})
	require.NoError(t, err)

	in, err := ParseUpdate(fields.Map{"Age": 5})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), a.ID, in)
	require.NoError(t, err)

	require.NotNil(t, updated.Age)
	assert.Equal(t, int64(5), *updated.Age)
	assert.Equal(t, "Rex", updated.Name)
	assert.Equal(t, "Lab", updated.Breed)
	assert.Equal(t, "Male", updated.Gender)
	assert.Equal(t, a.Status, updated.Status)
	assert.Equal(t, a.ArrivalDate, updated.ArrivalDate)
}

func TestService_UpdateIgnoresEmptyRequiredAndClearsAge(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	age := int64(2)
	a, err := svc.Create(context.Background(), CreateInput{Name: "Rex", Species: "Dog", Age: &age})
	require.NoError(t, err)

	in, err := ParseUpdate(fields.Map{"Name": "", "Age": nil, "Breed": nil, "Status": "Adopted"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Rex", updated.Name)
	assert.Nil(t, updated.Age)
	assert.Equal(t, "", updated.Breed)
	assert.Equal(t, "Adopted", updated.Status)
}

func TestService_UpdateAndDeleteNotFound(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.Update(context.Background(), 42, UpdateInput{})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	err = svc.Delete(context.Background(), 42)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.Equal(t, "Animal 42 not found.", err.Error())
}
