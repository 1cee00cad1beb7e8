package animals

import "shelter-records/internal/platform/civil"

// StatusAvailable es el estado inicial. Status es texto libre:
// no hay grafo de transiciones ("Available" -> "Adopted"/"Pending"/otro).
const StatusAvailable = "Available"

// Animal representa un animal alojado en el refugio.
type Animal struct {
	ID int64

	Name    string
	Species string
	Breed   string
	Age     *int64 // nil = desconocida
	Gender  string

	ArrivalDate civil.Date
	Status      string
}
