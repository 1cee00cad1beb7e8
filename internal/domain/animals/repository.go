package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) (int64, error)
	GetByID(ctx context.Context, id int64) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
	Update(ctx context.Context, a Animal) error
	// Delete borra el animal y, en la misma tx, sus historias clínicas y solicitudes de adopción.
	Delete(ctx context.Context, id int64) error
}
