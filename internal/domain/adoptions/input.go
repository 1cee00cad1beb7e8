package adoptions

import (
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/fields"
)

// Claves del formulario público de adopción.
const (
	keyAnimal     = "adoptAnimal"
	keyAnimalName = "adoptAnimalName"
	keyName       = "adoptName"
	keyContact    = "adoptContact"
	keyAddress    = "adoptAddress"
)

type CreateInput struct {
	AnimalID         int64
	AnimalName       string
	ApplicantName    string
	ApplicantContact string
	ApplicantAddress string
}

func ParseCreate(m fields.Map) (CreateInput, error) {
	var in CreateInput
	var err error

	if in.AnimalID, err = m.RequiredInt(keyAnimal); err != nil {
		return CreateInput{}, err
	}
	if in.AnimalName, err = m.RequiredString(keyAnimalName); err != nil {
		return CreateInput{}, err
	}
	if in.ApplicantName, err = m.RequiredString(keyName); err != nil {
		return CreateInput{}, err
	}
	if in.ApplicantContact, err = m.RequiredString(keyContact); err != nil {
		return CreateInput{}, err
	}
	if in.ApplicantAddress, err = m.RequiredString(keyAddress); err != nil {
		return CreateInput{}, err
	}
	return in, nil
}

// UpdateInput no incluye AnimalName: la foto no se reescribe.
type UpdateInput struct {
	AnimalID         *int64
	ApplicantName    *string
	ApplicantContact *string
	ApplicantAddress *string
	ApplicationDate  *civil.Date
	Status           *string
}

func ParseUpdate(m fields.Map) (UpdateInput, error) {
	var in UpdateInput

	id, ok, err := m.Int("AnimalID")
	if err != nil {
		return UpdateInput{}, err
	}
	if ok {
		in.AnimalID = &id
	}

	if in.ApplicantName, err = m.NonEmptyString("ApplicantName"); err != nil {
		return UpdateInput{}, err
	}
	if in.ApplicantContact, err = m.NonEmptyString("ApplicantContact"); err != nil {
		return UpdateInput{}, err
	}
	if in.ApplicantAddress, err = m.NonEmptyString("ApplicantAddress"); err != nil {
		return UpdateInput{}, err
	}

	d, ok, err := m.Date("ApplicationDate")
	if err != nil {
		return UpdateInput{}, err
	}
	if ok {
		in.ApplicationDate = &d
	}

	if in.Status, err = m.NonEmptyString("Status"); err != nil {
		return UpdateInput{}, err
	}
	return in, nil
}

func (in UpdateInput) apply(a *Application) {
	if in.AnimalID != nil {
		a.AnimalID = *in.AnimalID
	}
	if in.ApplicantName != nil {
		a.ApplicantName = *in.ApplicantName
	}
	if in.ApplicantContact != nil {
		a.ApplicantContact = *in.ApplicantContact
	}
	if in.ApplicantAddress != nil {
		a.ApplicantAddress = *in.ApplicantAddress
	}
	if in.ApplicationDate != nil {
		a.ApplicationDate = *in.ApplicationDate
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
}
