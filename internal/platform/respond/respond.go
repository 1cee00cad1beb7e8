// Package respond centraliza el envelope {success, message}.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/logger"
)

const msgInternal = "internal error"

// Envelope es la respuesta uniforme de todos los endpoints de escritura.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Success(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: true, Message: msg})
}

func Created(w http.ResponseWriter, msg string, id int64) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Message: msg, ID: &id})
}

func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: false, Message: msg})
}

// InvalidJSON es el 400 para bodies que no son un objeto JSON.
func InvalidJSON(w http.ResponseWriter) {
	Fail(w, http.StatusBadRequest, "invalid json")
}

// NotFound es el 404 con envelope para rutas o ids que no existen.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	Fail(w, http.StatusNotFound, "not found")
}

// MethodNotAllowed es el 405 con envelope.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	Fail(w, http.StatusMethodNotAllowed, "method not allowed")
}

// StatusOf traduce la clase de error a código HTTP.
func StatusOf(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindMissingField, apperrors.KindInvalidType, apperrors.KindInvalidAmount, apperrors.KindDuplicateEmail:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error escribe el envelope de error. Los errores de storage se loguean con
// el logger del request y el cliente sólo recibe un mensaje genérico.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context(), nil).Error("request failed", map[string]any{
			"error": err,
		})
		Fail(w, status, msgInternal)
		return
	}

	var e *apperrors.Error
	if errors.As(err, &e) {
		Fail(w, status, e.Error())
		return
	}
	Fail(w, status, err.Error())
}

// PathID lee {id} de la ruta. Las rutas ya filtran [0-9]+; falla por overflow o id 0.
func PathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
