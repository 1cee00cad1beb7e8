package medical

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medical", func(mr chi.Router) {
		mr.Get("/", listRecordsHandler(svc))
		mr.Post("/", createRecordHandler(svc))

		mr.Get("/{id:[0-9]+}", getRecordHandler(svc))
		mr.Put("/{id:[0-9]+}", updateRecordHandler(svc))
		mr.Delete("/{id:[0-9]+}", deleteRecordHandler(svc))
	})
}

type recordResponse struct {
	RecordID    int64  `json:"RecordID"`
	AnimalID    int64  `json:"AnimalID"`
	Date        string `json:"Date"`
	Description string `json:"Description"`
	VetName     string `json:"VetName"`
}

type createRecordRequest struct {
	AnimalID    int64  `json:"AnimalID" example:"1"`
	Date        string `json:"Date" example:"2024-03-02"`
	Description string `json:"Description" example:"Vacuna antirrábica"`
	VetName     string `json:"VetName"`
}

// listRecordsHandler godoc
// @Summary Listar historias clínicas
// @Tags medical
// @Produce json
// @Success 200 {array} recordResponse
// @Router /api/medical [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getRecordHandler godoc
// @Summary Obtener historia clínica
// @Tags medical
// @Produce json
// @Param id path int true "RecordID"
// @Success 200 {object} recordResponse
// @Failure 404 {object} respond.Envelope
// @Router /api/medical/{id} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r)
		if !ok {
			respond.NotFound(w, r)
			return
		}

		rec, err := svc.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// createRecordHandler godoc
// @Summary Registrar historia clínica
// @Description AnimalID, Date y Description son obligatorios. El animal tiene que existir.
// @Tags medical
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Entrada clínica"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope "animal inexistente"
// @Router /api/medical [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
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

		rec, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Created(w, "Medical record added.", rec.ID)
	}
}

// updateRecordHandler godoc
// @Summary Actualizar historia clínica
// @Tags medical
// @Accept json
// @Produce json
// @Param id path int true "RecordID"
// @Param payload body createRecordRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/medical/{id} [put]
func updateRecordHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Medical record updated.")
	}
}

// deleteRecordHandler godoc
// @Summary Eliminar historia clínica
// @Tags medical
// @Produce json
// @Param id path int true "RecordID"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/medical/{id} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Medical record deleted.")
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		RecordID:    rec.ID,
		AnimalID:    rec.AnimalID,
		Date:        rec.Date.String(),
		Description: rec.Description,
		VetName:     rec.VetName,
	}
}
