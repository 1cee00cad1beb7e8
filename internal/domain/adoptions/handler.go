package adoptions

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listApplicationsHandler(svc))
		ar.Post("/", submitApplicationHandler(svc))

		ar.Get("/{id:[0-9]+}", getApplicationHandler(svc))
		ar.Put("/{id:[0-9]+}", updateApplicationHandler(svc))
		ar.Delete("/{id:[0-9]+}", deleteApplicationHandler(svc))
	})
}

type applicationResponse struct {
	ApplicationID    int64  `json:"ApplicationID"`
	AnimalID         int64  `json:"AnimalID"`
	AnimalName       string `json:"AnimalName"`
	ApplicantName    string `json:"ApplicantName"`
	ApplicantContact string `json:"ApplicantContact"`
	ApplicantAddress string `json:"ApplicantAddress"`
	ApplicationDate  string `json:"ApplicationDate"`
	Status           string `json:"Status"`
}

type submitApplicationRequest struct {
	AdoptAnimal     int64  `json:"adoptAnimal" example:"1"`
	AdoptAnimalName string `json:"adoptAnimalName" example:"Rex"`
	AdoptName       string `json:"adoptName" example:"Ana Pérez"`
	AdoptContact    string `json:"adoptContact" example:"ana@example.com"`
	AdoptAddress    string `json:"adoptAddress" example:"Av. Siempre Viva 742"`
}

type updateApplicationRequest struct {
	AnimalID         int64  `json:"AnimalID"`
	ApplicantName    string `json:"ApplicantName"`
	ApplicantContact string `json:"ApplicantContact"`
	ApplicantAddress string `json:"ApplicantAddress"`
	ApplicationDate  string `json:"ApplicationDate"`
	Status           string `json:"Status" example:"Approved"`
}

// listApplicationsHandler godoc
// @Summary Listar solicitudes de adopción
// @Tags adoptions
// @Produce json
// @Success 200 {array} applicationResponse
// @Router /api/adoptions [get]
func listApplicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toApplicationResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getApplicationHandler godoc
// @Summary Obtener solicitud de adopción
// @Tags adoptions
// @Produce json
// @Param id path int true "ApplicationID"
// @Success 200 {object} applicationResponse
// @Failure 404 {object} respond.Envelope
// @Router /api/adoptions/{id} [get]
func getApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r)
		if !ok {
			respond.NotFound(w, r)
			return
		}

		app, err := svc.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toApplicationResponse(app))
	}
}

// submitApplicationHandler godoc
// @Summary Enviar solicitud de adopción
// @Description Formulario público. Todos los campos son obligatorios; la solicitud queda en "Pending".
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body submitApplicationRequest true "Formulario de adopción"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope "animal inexistente"
// @Router /api/adoptions [post]
func submitApplicationHandler(svc *Service) http.HandlerFunc {
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

		app, err := svc.Submit(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Created(w, "Adoption application submitted!", app.ID)
	}
}

// updateApplicationHandler godoc
// @Summary Actualizar solicitud de adopción
// @Description Cambiar Status no modifica el Status del animal.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param id path int true "ApplicationID"
// @Param payload body updateApplicationRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/adoptions/{id} [put]
func updateApplicationHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Adoption application updated.")
	}
}

// deleteApplicationHandler godoc
// @Summary Eliminar solicitud de adopción
// @Tags adoptions
// @Produce json
// @Param id path int true "ApplicationID"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/adoptions/{id} [delete]
func deleteApplicationHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Adoption application deleted.")
	}
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ApplicationID:    a.ID,
		AnimalID:         a.AnimalID,
		AnimalName:       a.AnimalName,
		ApplicantName:    a.ApplicantName,
		ApplicantContact: a.ApplicantContact,
		ApplicantAddress: a.ApplicantAddress,
		ApplicationDate:  a.ApplicationDate.String(),
		Status:           a.Status,
	}
}
