package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/signup", signupHandler(svc))
		ur.Post("/login", loginHandler(svc))
	})
}

type signupRequest struct {
	Name     string `json:"name" example:"Ana Pérez"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"s3cret"`
}

type loginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"s3cret"`
}

// userResponse nunca incluye el hash.
type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// signupHandler godoc
// @Summary Registrar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body signupRequest true "Datos de la cuenta"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope "campo faltante o email ya registrado"
// @Router /api/users/signup [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := fields.Decode(r.Body)
		if err != nil {
			respond.InvalidJSON(w)
			return
		}

		in, err := ParseSignup(m)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		u, err := svc.Signup(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Created(w, "User registered successfully. Please login.", u.ID)
	}
}

// loginHandler godoc
// @Summary Login de usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} respond.Envelope
// @Failure 401 {object} respond.Envelope "Invalid email or password."
// @Router /api/users/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := fields.Decode(r.Body)
		if err != nil {
			respond.InvalidJSON(w)
			return
		}

		in, err := ParseLogin(m)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		u, err := svc.Login(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, loginResponse{
			Success: true,
			Message: "Login successful",
			User: userResponse{
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
			},
		})
	}
}
