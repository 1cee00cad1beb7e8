package donors

import "shelter-records/internal/platform/fields"

type CreateInput struct {
	Name        string
	ContactInfo string
}

func ParseCreate(m fields.Map) (CreateInput, error) {
	name, err := m.RequiredString("Name")
	if err != nil {
		return CreateInput{}, err
	}
	contact, err := m.Text("ContactInfo")
	if err != nil {
		return CreateInput{}, err
	}
	return CreateInput{Name: name, ContactInfo: contact}, nil
}

type UpdateInput struct {
	Name        *string
	ContactInfo *string
}

func ParseUpdate(m fields.Map) (UpdateInput, error) {
	var in UpdateInput
	var err error

	if in.Name, err = m.NonEmptyString("Name"); err != nil {
		return UpdateInput{}, err
	}
	if in.ContactInfo, err = m.OptionalString("ContactInfo"); err != nil {
		return UpdateInput{}, err
	}
	return in, nil
}
