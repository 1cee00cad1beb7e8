// Package apperrors define la taxonomía de errores que cruzan servicio -> handler.
// Los adapters devuelven errores crudos (o ya clasificados); los servicios los
// normalizan con AsStorage antes de devolverlos.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindMissingField       Kind = "missing_field"
	KindInvalidType        Kind = "invalid_type"
	KindInvalidAmount      Kind = "invalid_amount"
	KindNotFound           Kind = "not_found"
	KindDuplicateEmail     Kind = "duplicate_email"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindStorage            Kind = "storage_error"
)

// Error es el único tipo de error que entienden los handlers.
type Error struct {
	Kind Kind

	Field    string // MissingField / InvalidType / InvalidAmount
	Expected string // InvalidType
	Entity   string // NotFound
	ID       int64  // NotFound

	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("%s is required.", e.Field)
	case KindInvalidType:
		return fmt.Sprintf("%s must be %s.", e.Field, e.Expected)
	case KindInvalidAmount:
		return "Invalid donation amount."
	case KindNotFound:
		return fmt.Sprintf("%s %d not found.", e.Entity, e.ID)
	case KindDuplicateEmail:
		return "Email already registered. Please login."
	case KindInvalidCredentials:
		if e.Detail != "" {
			return e.Detail
		}
		return "Invalid email or password."
	case KindStorage:
		if e.Err != nil {
			return fmt.Sprintf("storage error: %s: %v", e.Detail, e.Err)
		}
		return "storage error: " + e.Detail
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func MissingField(name string) error {
	return &Error{Kind: KindMissingField, Field: name}
}

func InvalidType(field, expected string) error {
	return &Error{Kind: KindInvalidType, Field: field, Expected: expected}
}

func InvalidAmount(field string) error {
	return &Error{Kind: KindInvalidAmount, Field: field}
}

func NotFound(entity string, id int64) error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

func DuplicateEmail(email string) error {
	return &Error{Kind: KindDuplicateEmail, Detail: email}
}

// InvalidCredentials acepta un mensaje opcional (login de usuario vs operador).
func InvalidCredentials(msg string) error {
	return &Error{Kind: KindInvalidCredentials, Detail: msg}
}

// Storage envuelve un fallo del datastore. detail es para logs, nunca para el cliente.
func Storage(detail string, err error) error {
	return &Error{Kind: KindStorage, Detail: detail, Err: err}
}

// AsStorage deja pasar errores ya clasificados y envuelve el resto como StorageError.
func AsStorage(detail string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Storage(detail, err)
}

// KindOf devuelve la clase del error; cualquier error no clasificado cuenta como storage.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
