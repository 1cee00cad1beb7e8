package medical

import (
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/fields"
)

type CreateInput struct {
	AnimalID    int64
	Date        civil.Date
	Description string
	VetName     string
}

func ParseCreate(m fields.Map) (CreateInput, error) {
	var in CreateInput
	var err error

	if in.AnimalID, err = m.RequiredInt("AnimalID"); err != nil {
		return CreateInput{}, err
	}
	if in.Date, err = m.RequiredDate("Date"); err != nil {
		return CreateInput{}, err
	}
	if in.Description, err = m.RequiredString("Description"); err != nil {
		return CreateInput{}, err
	}
	if in.VetName, err = m.Text("VetName"); err != nil {
		return CreateInput{}, err
	}
	return in, nil
}

type UpdateInput struct {
	AnimalID    *int64
	Date        *civil.Date
	Description *string
	VetName     *string
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

	d, ok, err := m.Date("Date")
	if err != nil {
		return UpdateInput{}, err
	}
	if ok {
		in.Date = &d
	}

	if in.Description, err = m.NonEmptyString("Description"); err != nil {
		return UpdateInput{}, err
	}
	if in.VetName, err = m.OptionalString("VetName"); err != nil {
		return UpdateInput{}, err
	}
	return in, nil
}

func (in UpdateInput) apply(r *Record) {
	if in.AnimalID != nil {
		r.AnimalID = *in.AnimalID
	}
	if in.Date != nil {
		r.Date = *in.Date
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.VetName != nil {
		r.VetName = *in.VetName
	}
}
