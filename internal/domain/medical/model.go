package medical

import "shelter-records/internal/platform/civil"

// Record es una entrada de la historia clínica de un animal.
type Record struct {
	ID       int64
	AnimalID int64

	Date        civil.Date
	Description string
	VetName     string
}
