package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/logger"
	"shelter-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/admin/login", loginHandler(svc))
}

type loginRequest struct {
	Username string `json:"username" example:"keeper"`
	Password string `json:"password"`
}

// loginHandler godoc
// @Summary Login de operador
// @Description Verifica el par configurado en admin.username / admin.password. Sin par configurado siempre responde 401. No emite sesión ni token.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales del operador"
// @Success 200 {object} respond.Envelope
// @Failure 401 {object} respond.Envelope "Invalid username or password."
// @Router /api/admin/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := fields.Decode(r.Body)
		if err != nil {
			respond.InvalidJSON(w)
			return
		}

		// Campos faltantes o no escalares cuentan como credenciales inválidas (401, no 400).
		// La contraseña va sin recortar, igual que en users.
		username, _ := m.Text("username")
		password, _ := m.Secret("password")

		op, err := svc.Login(r.Context(), username, password)
		if err != nil {
			logger.FromContext(r.Context(), nil).Warn("admin login rejected", map[string]any{
				"username": username,
			})
			respond.Error(w, r, err)
			return
		}

		logger.FromContext(r.Context(), nil).Info("admin login", map[string]any{
			"username": op.Username,
		})
		respond.Success(w, http.StatusOK, "Login successful.")
	}
}
