package donations

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/logger"
	"shelter-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/donations", func(dr chi.Router) {
		dr.Get("/", listDonationsHandler(svc))
		dr.Post("/", submitDonationHandler(svc))

		dr.Get("/{id:[0-9]+}", getDonationHandler(svc))
		dr.Put("/{id:[0-9]+}", updateDonationHandler(svc))
		dr.Delete("/{id:[0-9]+}", deleteDonationHandler(svc))
	})
}

type donationResponse struct {
	DonationID int64  `json:"DonationID"`
	DonorID    int64  `json:"DonorID"`
	Amount     string `json:"Amount"` // "25.50"
	Date       string `json:"Date"`
	Method     string `json:"Method"`
}

type submitDonationRequest struct {
	DonorName      string `json:"donorName" example:"Ana Pérez"`
	DonorContact   string `json:"donorContact" example:"ana@example.com"`
	DonationAmount string `json:"donationAmount" example:"25.50"`
}

type updateDonationRequest struct {
	DonorID int64  `json:"DonorID"`
	Amount  string `json:"Amount" example:"30.00"`
	Date    string `json:"Date" example:"2024-05-05"`
	Method  string `json:"Method"`
}

// listDonationsHandler godoc
// @Summary Listar donaciones
// @Tags donations
// @Produce json
// @Success 200 {array} donationResponse
// @Router /api/donations [get]
func listDonationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]donationResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDonationResponse(d))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getDonationHandler godoc
// @Summary Obtener donación
// @Tags donations
// @Produce json
// @Param id path int true "DonationID"
// @Success 200 {object} donationResponse
// @Failure 404 {object} respond.Envelope
// @Router /api/donations/{id} [get]
func getDonationHandler(svc *Service) http.HandlerFunc {
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
		respond.JSON(w, http.StatusOK, toDonationResponse(d))
	}
}

// submitDonationHandler godoc
// @Summary Donar
// @Description Formulario público. Busca el donante por nombre exacto o lo crea; la donación queda con método "Online" y fecha de hoy. Responde 200 (no 201) por compatibilidad con el front.
// @Tags donations
// @Accept json
// @Produce json
// @Param payload body submitDonationRequest true "Donación"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope "falta nombre/monto o monto inválido"
// @Failure 500 {object} respond.Envelope
// @Router /api/donations [post]
func submitDonationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := fields.Decode(r.Body)
		if err != nil {
			respond.InvalidJSON(w)
			return
		}

		in, err := ParseSubmission(m)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		res, err := svc.Submit(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		logger.FromContext(r.Context(), nil).Info("donation submitted", map[string]any{
			"donation_id":   res.Donation.ID,
			"donor_id":      res.Donor.ID,
			"donor_created": res.DonorCreated,
		})

		id := res.Donation.ID
		respond.JSON(w, http.StatusOK, respond.Envelope{
			Success: true,
			Message: "Donation submitted. Thank you!",
			ID:      &id,
		})
	}
}

// updateDonationHandler godoc
// @Summary Actualizar donación
// @Tags donations
// @Accept json
// @Produce json
// @Param id path int true "DonationID"
// @Param payload body updateDonationRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/donations/{id} [put]
func updateDonationHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Donation updated.")
	}
}

// deleteDonationHandler godoc
// @Summary Eliminar donación
// @Tags donations
// @Produce json
// @Param id path int true "DonationID"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/donations/{id} [delete]
func deleteDonationHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Donation deleted.")
	}
}

func toDonationResponse(d Donation) donationResponse {
	return donationResponse{
		DonationID: d.ID,
		DonorID:    d.DonorID,
		Amount:     d.Amount.StringFixed(2),
		Date:       d.Date.String(),
		Method:     d.Method,
	}
}
