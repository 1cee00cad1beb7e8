package volunteers

import "context"

type Repository interface {
	Create(ctx context.Context, v Volunteer) (int64, error)
	GetByID(ctx context.Context, id int64) (Volunteer, error)
	List(ctx context.Context) ([]Volunteer, error)
	Update(ctx context.Context, v Volunteer) error
	Delete(ctx context.Context, id int64) error
}
