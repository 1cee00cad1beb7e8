package adoptions

import "shelter-records/internal/platform/civil"

// StatusPending es el estado inicial. Como en animals, Status es texto libre
// (convención: "Pending" -> "Approved"/"Rejected") y no afecta al animal.
const StatusPending = "Pending"

// Application es una solicitud de adopción.
type Application struct {
	ID       int64
	AnimalID int64

	// AnimalName es una foto del nombre al momento de la solicitud;
	// no se actualiza si el animal cambia de nombre.
	AnimalName string

	ApplicantName    string
	ApplicantContact string
	ApplicantAddress string

	ApplicationDate civil.Date
	Status          string
}
