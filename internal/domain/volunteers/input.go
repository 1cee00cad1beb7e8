package volunteers

import (
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/fields"
)

type CreateInput struct {
	Name          string
	ContactInfo   string
	JoinDate      civil.Date // cero = hoy
	AssignedTasks string
}

func ParseCreate(m fields.Map) (CreateInput, error) {
	var in CreateInput
	var err error

	if in.Name, err = m.RequiredString("Name"); err != nil {
		return CreateInput{}, err
	}
	if in.ContactInfo, err = m.Text("ContactInfo"); err != nil {
		return CreateInput{}, err
	}
	if in.JoinDate, _, err = m.Date("JoinDate"); err != nil {
		return CreateInput{}, err
	}
	if in.AssignedTasks, err = m.Text("AssignedTasks"); err != nil {
		return CreateInput{}, err
	}
	return in, nil
}

type UpdateInput struct {
	Name          *string
	ContactInfo   *string
	JoinDate      *civil.Date
	AssignedTasks *string
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

	d, ok, err := m.Date("JoinDate")
	if err != nil {
		return UpdateInput{}, err
	}
	if ok {
		in.JoinDate = &d
	}

	if in.AssignedTasks, err = m.OptionalString("AssignedTasks"); err != nil {
		return UpdateInput{}, err
	}
	return in, nil
}

func (in UpdateInput) apply(v *Volunteer) {
	if in.Name != nil {
		v.Name = *in.Name
	}
	if in.ContactInfo != nil {
		v.ContactInfo = *in.ContactInfo
	}
	if in.JoinDate != nil {
		v.JoinDate = *in.JoinDate
	}
	if in.AssignedTasks != nil {
		v.AssignedTasks = *in.AssignedTasks
	}
}
