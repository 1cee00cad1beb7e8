package users

import (
	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/fields"
)

// bcrypt ignora (o rechaza) lo que pase de 72 bytes.
const maxPasswordBytes = 72

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

func ParseSignup(m fields.Map) (SignupInput, error) {
	var in SignupInput
	var err error

	if in.Name, err = m.RequiredString("name"); err != nil {
		return SignupInput{}, err
	}
	if in.Email, err = m.RequiredString("email"); err != nil {
		return SignupInput{}, err
	}
	if in.Password, err = m.RequiredSecret("password"); err != nil {
		return SignupInput{}, err
	}
	if len(in.Password) > maxPasswordBytes {
		return SignupInput{}, apperrors.InvalidType("password", "at most 72 bytes")
	}
	return in, nil
}

type LoginInput struct {
	Email    string
	Password string
}

func ParseLogin(m fields.Map) (LoginInput, error) {
	var in LoginInput
	var err error

	if in.Email, err = m.RequiredString("email"); err != nil {
		return LoginInput{}, err
	}
	if in.Password, err = m.RequiredSecret("password"); err != nil {
		return LoginInput{}, err
	}
	return in, nil
}
