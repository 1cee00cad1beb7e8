package volunteers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/volunteers", func(vr chi.Router) {
		vr.Get("/", listVolunteersHandler(svc))
		vr.Post("/", createVolunteerHandler(svc))

		vr.Get("/{id:[0-9]+}", getVolunteerHandler(svc))
		vr.Put("/{id:[0-9]+}", updateVolunteerHandler(svc))
		vr.Delete("/{id:[0-9]+}", deleteVolunteerHandler(svc))
	})
}

type volunteerResponse struct {
	VolunteerID   int64  `json:"VolunteerID"`
	Name          string `json:"Name"`
	ContactInfo   string `json:"ContactInfo"`
	JoinDate      string `json:"JoinDate"`
	AssignedTasks string `json:"AssignedTasks"`
}

type volunteerRequest struct {
	Name          string `json:"Name" example:"Vera"`
	ContactInfo   string `json:"ContactInfo"`
	JoinDate      string `json:"JoinDate" example:"2024-01-15"`
	AssignedTasks string `json:"AssignedTasks" example:"Paseos de la mañana"`
}

// listVolunteersHandler godoc
// @Summary Listar voluntarios
// @Tags volunteers
// @Produce json
// @Success 200 {array} volunteerResponse
// @Router /api/volunteers [get]
func listVolunteersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]volunteerResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVolunteerResponse(v))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getVolunteerHandler godoc
// @Summary Obtener voluntario
// @Tags volunteers
// @Produce json
// @Param id path int true "VolunteerID"
// @Success 200 {object} volunteerResponse
// @Failure 404 {object} respond.Envelope
// @Router /api/volunteers/{id} [get]
func getVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r)
		if !ok {
			respond.NotFound(w, r)
			return
		}

		v, err := svc.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toVolunteerResponse(v))
	}
}

// createVolunteerHandler godoc
// @Summary Registrar voluntario
// @Description Name es obligatorio; JoinDate por defecto hoy.
// @Tags volunteers
// @Accept json
// @Produce json
// @Param payload body volunteerRequest true "Voluntario"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /api/volunteers [post]
func createVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := fields.Decode(r.Body)
		if err != nil {
			respond.InvalidJSON(w)
			return
		}

		in, err := ParseCreate(m)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		v, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Created(w, "Volunteer added.", v.ID)
	}
}

// updateVolunteerHandler godoc
// @Summary Actualizar voluntario
// @Tags volunteers
// @Accept json
// @Produce json
// @Param id path int true "VolunteerID"
// @Param payload body volunteerRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/volunteers/{id} [put]
func updateVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r)
		if !ok {
			respond.NotFound(w, r)
			return
		}

		m, err := fields.Decode(r.Body)
		if err != nil {
			respond.InvalidJSON(w)
			return
		}

		in, err := ParseUpdate(m)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		if _, err := svc.Update(r.Context(), id, in); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Success(w, http.StatusOK, "Volunteer updated.")
	}
}

// deleteVolunteerHandler godoc
// @Summary Eliminar voluntario
// @Tags volunteers
// @Produce json
// @Param id path int true "VolunteerID"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/volunteers/{id} [delete]
func deleteVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r)
		if !ok {
			respond.NotFound(w, r)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Success(w, http.StatusOK, "Volunteer deleted.")
	}
}

func toVolunteerResponse(v Volunteer) volunteerResponse {
	return volunteerResponse{
		VolunteerID:   v.ID,
		Name:          v.Name,
		ContactInfo:   v.ContactInfo,
		JoinDate:      v.JoinDate.String(),
		AssignedTasks: v.AssignedTasks,
	}
}
