package donors

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/donors", func(dr chi.Router) {
		dr.Get("/", listDonorsHandler(svc))
		dr.Post("/", createDonorHandler(svc))

		dr.Get("/{id:[0-9]+}", getDonorHandler(svc))
		dr.Put("/{id:[0-9]+}", updateDonorHandler(svc))
		dr.Delete("/{id:[0-9]+}", deleteDonorHandler(svc))
	})
}

type donorResponse struct {
	DonorID     int64  `json:"DonorID"`
	Name        string `json:"Name"`
	ContactInfo string `json:"ContactInfo"`
}

type donorRequest struct {
	Name        string `json:"Name" example:"Ana Pérez"`
	ContactInfo string `json:"ContactInfo" example:"ana@example.com"`
}

// listDonorsHandler godoc
// @Summary Listar donantes
// @Tags donors
// @Produce json
// @Success 200 {array} donorResponse
// @Router /api/donors [get]
func listDonorsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]donorResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDonorResponse(d))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getDonorHandler godoc
// @Summary Obtener donante
// @Tags donors
// @Produce json
// @Param id path int true "DonorID"
// @Success 200 {object} donorResponse
// @Failure 404 {object} respond.Envelope
// @Router /api/donors/{id} [get]
func getDonorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r)
		if !ok {
			respond.NotFound(w, r)
			return
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toDonorResponse(d))
	}
}

// createDonorHandler godoc
// @Summary Registrar donante
// @Tags donors
// @Accept json
// @Produce json
// @Param payload body donorRequest true "Donante"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /api/donors [post]
func createDonorHandler(svc *Service) http.HandlerFunc {
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

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Created(w, "Donor added.", d.ID)
	}
}

// updateDonorHandler godoc
// @Summary Actualizar donante
// @Tags donors
// @Accept json
// @Produce json
// @Param id path int true "DonorID"
// @Param payload body donorRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/donors/{id} [put]
func updateDonorHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Donor updated.")
	}
}

// deleteDonorHandler godoc
// @Summary Eliminar donante
// @Description Borra también todas sus donaciones.
// @Tags donors
// @Produce json
// @Param id path int true "DonorID"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/donors/{id} [delete]
func deleteDonorHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Donor deleted.")
	}
}

func toDonorResponse(d Donor) donorResponse {
	return donorResponse{
		DonorID:     d.ID,
		Name:        d.Name,
		ContactInfo: d.ContactInfo,
	}
}
