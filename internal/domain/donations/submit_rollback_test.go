package donations_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/adapters/storage/sqlstore"
	"shelter-records/internal/domain/donations"
)

// failingDonations deja pasar todo salvo el insert de la donación.
type failingDonations struct {
	*sqlstore.DonationsRepo
}

func (f failingDonations) Create(ctx context.Context, d donations.Donation) (int64, error) {
	return 0, errors.New("insert donation: connection reset")
}

func TestSubmit_FailureAfterDonorInsertRollsBack(t *testing.T) {
	ctx := context.Background()

	db, err := sqlstore.Open(ctx, sqlstore.Options{
		Dialect: sqlstore.SQLite,
		DSN:     fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	donorRepo := sqlstore.NewDonorsRepo(db)
	svc := donations.NewService(failingDonations{sqlstore.NewDonationsRepo(db)}, donorRepo, db, nil)

	_, err = svc.Submit(ctx, donations.SubmitInput{
		DonorName: "Ghost",
		Amount:    decimal.RequireFromString("10.00"),
	})
	require.Error(t, err)

	list, err := donorRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
