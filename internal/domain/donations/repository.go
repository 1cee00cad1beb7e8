package donations

import "context"

type Repository interface {
	Create(ctx context.Context, d Donation) (int64, error)
	GetByID(ctx context.Context, id int64) (Donation, error)
	List(ctx context.Context) ([]Donation, error)
	Update(ctx context.Context, d Donation) error
	Delete(ctx context.Context, id int64) error
}
