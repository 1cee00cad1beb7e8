package medical

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) (int64, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, r Record) error
	Delete(ctx context.Context, id int64) error
}
