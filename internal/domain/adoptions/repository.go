package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) (int64, error)
	GetByID(ctx context.Context, id int64) (Application, error)
	List(ctx context.Context) ([]Application, error)
	Update(ctx context.Context, a Application) error
	Delete(ctx context.Context, id int64) error
}
