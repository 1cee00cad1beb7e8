package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/platform/apperrors"
)

func TestStatusOf(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:          apperrors.MissingField("Name"),
		http.StatusNotFound:            apperrors.NotFound("Animal", 3),
		http.StatusUnauthorized:        apperrors.InvalidCredentials(""),
		http.StatusInternalServerError: errors.New("boom"),
	}
	for want, err := range cases {
		assert.Equal(t, want, StatusOf(err), err.Error())
	}
	assert.Equal(t, http.StatusBadRequest, StatusOf(apperrors.DuplicateEmail("a@b")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(apperrors.InvalidAmount("x")))
}

func TestError_HidesStorageDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Error(rr, req, apperrors.Storage("insert animal", errors.New("disk I/O error")))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var env Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "internal error", env.Message)
	assert.NotContains(t, rr.Body.String(), "disk")
}

func TestError_ClientMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Error(rr, req, apperrors.NotFound("Donor", 9))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Donor 9 not found."}`, rr.Body.String())
}

func TestCreated_IncludesID(t *testing.T) {
	rr := httptest.NewRecorder()
	Created(rr, "Animal added.", 7)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"Animal added.","id":7}`, rr.Body.String())
}

func TestPathID(t *testing.T) {
	var got int64
	var ok bool

	r := chi.NewRouter()
	r.Get("/x/{id}", func(w http.ResponseWriter, req *http.Request) {
		got, ok = PathID(req)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/42", nil))
	assert.True(t, ok)
	assert.Equal(t, int64(42), got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/99999999999999999999", nil))
	assert.False(t, ok)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/0", nil))
	assert.False(t, ok)
}

func TestNotFoundAndMethodNotAllowed_UseEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFound(rr, httptest.NewRequest(http.MethodGet, "/x/0", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	MethodNotAllowed(rr, httptest.NewRequest(http.MethodPatch, "/x", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"method not allowed"}`, rr.Body.String())
}
