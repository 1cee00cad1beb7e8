package medical

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/domain/animals"
	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/txn"
)

type testRepo struct {
	byID   map[int64]Record
	nextID int64
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Record{}} }

func (r *testRepo) Create(ctx context.Context, rec Record) (int64, error) {
	r.nextID++
	rec.ID = r.nextID
	r.byID[rec.ID] = rec
	return rec.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, apperrors.NotFound("Medical record", id)
	}
	return rec, nil
}

func (r *testRepo) List(ctx context.Context) ([]Record, error) {
	out := make([]Record, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if rec, ok := r.byID[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("Medical record", id)
	}
	delete(r.byID, id)
	return nil
}

// animalSet simula la tabla de animales para la verificación de FK.
type animalSet map[int64]bool

func (s animalSet) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	if !s[id] {
		return animals.Animal{}, apperrors.NotFound("Animal", id)
	}
	return animals.Animal{ID: id}, nil
}

func TestParseCreate(t *testing.T) {
	_, err := ParseCreate(fields.Map{"Date": "2024-01-01", "Description": "x"})
	require.Error(t, err)
	assert.Equal(t, "AnimalID is required.", err.Error())

	_, err = ParseCreate(fields.Map{"AnimalID": "1", "Description": "x"})
	require.Error(t, err)
	assert.Equal(t, "Date is required.", err.Error())

	_, err = ParseCreate(fields.Map{"AnimalID": "abc", "Date": "2024-01-01", "Description": "x"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidType))

	in, err := ParseCreate(fields.Map{"AnimalID": "7", "Date": "2024-01-01", "Description": " rabies "})
	require.NoError(t, err)
	assert.Equal(t, int64(7), in.AnimalID)
	assert.Equal(t, "rabies", in.Description)
}

func TestService_CreateRequiresExistingAnimal(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, animalSet{1: true}, txn.Passthrough)

	_, err := svc.Create(context.Background(), CreateInput{AnimalID: 9, Date: civil.MustParse("2024-01-01"), Description: "x"})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.Empty(t, repo.byID)

	rec, err := svc.Create(context.Background(), CreateInput{AnimalID: 1, Date: civil.MustParse("2024-01-01"), Description: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
}

func TestService_UpdatePartial(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, animalSet{1: true}, txn.Passthrough)

	rec, err := svc.Create(context.Background(), CreateInput{AnimalID: 1, Date: civil.MustParse("2024-01-01"), Description: "x", VetName: "Dr. Vet"})
	require.NoError(t, err)

	in, err := ParseUpdate(fields.Map{"Description": "updated", "Date": ""})
	require.NoError(t, err)
	got, err := svc.Update(context.Background(), rec.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "updated", got.Description)
	assert.Equal(t, "2024-01-01", got.Date.String())
	assert.Equal(t, "Dr. Vet", got.VetName)

	in, err = ParseUpdate(fields.Map{"AnimalID": 2})
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), rec.ID, in)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
