package donors

import "context"

type Repository interface {
	Create(ctx context.Context, d Donor) (int64, error)
	GetByID(ctx context.Context, id int64) (Donor, error)
	List(ctx context.Context) ([]Donor, error)
	Update(ctx context.Context, d Donor) error
	// Delete borra el donante y sus donaciones en la misma tx.
	Delete(ctx context.Context, id int64) error

	// FindByName busca por nombre exacto; si hay varios devuelve el de menor id.
	FindByName(ctx context.Context, name string) (Donor, bool, error)
	// LockName serializa el find-or-create por nombre dentro de la tx actual.
	LockName(ctx context.Context, name string) error
}
