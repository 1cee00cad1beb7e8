package users

import "shelter-records/internal/platform/civil"

// User es una cuenta del front público. PasswordHash nunca sale del paquete
// hacia la API.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RegisterDate civil.Date
}
