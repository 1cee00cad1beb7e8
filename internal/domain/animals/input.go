package animals

import (
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/fields"
)

type CreateInput struct {
	Name        string
	Species     string
	Breed       string
	Age         *int64
	Gender      string
	ArrivalDate civil.Date // cero = hoy
	Status      string     // "" = Available
}

// ParseCreate valida en orden: Name, Species, Age, ArrivalDate.
func ParseCreate(m fields.Map) (CreateInput, error) {
	var in CreateInput
	var err error

	if in.Name, err = m.RequiredString("Name"); err != nil {
		return CreateInput{}, err
	}
	if in.Species, err = m.RequiredString("Species"); err != nil {
		return CreateInput{}, err
	}
	if in.Breed, err = m.Text("Breed"); err != nil {
		return CreateInput{}, err
	}
	if in.Age, _, err = m.NullableInt("Age"); err != nil {
		return CreateInput{}, err
	}
	if in.Gender, err = m.Text("Gender"); err != nil {
		return CreateInput{}, err
	}
	if in.ArrivalDate, _, err = m.Date("ArrivalDate"); err != nil {
		return CreateInput{}, err
	}
	if in.Status, err = m.Text("Status"); err != nil {
		return CreateInput{}, err
	}

	return in, nil
}

// UpdateInput: nil = no tocar. Age usa AgeSet porque nil también significa "limpiar".
type UpdateInput struct {
	Name        *string
	Species     *string
	Breed       *string
	Age         *int64
	AgeSet      bool
	Gender      *string
	ArrivalDate *civil.Date
	Status      *string
}

func ParseUpdate(m fields.Map) (UpdateInput, error) {
	var in UpdateInput
	var err error

	if in.Name, err = m.NonEmptyString("Name"); err != nil {
		return UpdateInput{}, err
	}
	if in.Species, err = m.NonEmptyString("Species"); err != nil {
		return UpdateInput{}, err
	}
	if in.Breed, err = m.OptionalString("Breed"); err != nil {
		return UpdateInput{}, err
	}

	age, present, err := m.NullableInt("Age")
	if err != nil {
		return UpdateInput{}, err
	}
	in.Age, in.AgeSet = age, present

	if in.Gender, err = m.OptionalString("Gender"); err != nil {
		return UpdateInput{}, err
	}

	d, ok, err := m.Date("ArrivalDate")
	if err != nil {
		return UpdateInput{}, err
	}
	if ok {
		in.ArrivalDate = &d
	}

	if in.Status, err = m.NonEmptyString("Status"); err != nil {
		return UpdateInput{}, err
	}
	return in, nil
}

func (in UpdateInput) apply(a *Animal) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Species != nil {
		a.Species = *in.Species
	}
	if in.Breed != nil {
		a.Breed = *in.Breed
	}
	if in.AgeSet {
		a.Age = in.Age
	}
	if in.Gender != nil {
		a.Gender = *in.Gender
	}
	if in.ArrivalDate != nil {
		a.ArrivalDate = *in.ArrivalDate
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
}
