package animals

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-records/internal/platform/fields"
	"shelter-records/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))

		ar.Get("/{id:[0-9]+}", getAnimalHandler(svc))
		ar.Put("/{id:[0-9]+}", updateAnimalHandler(svc))
		ar.Delete("/{id:[0-9]+}", deleteAnimalHandler(svc))
	})
}

// Claves PascalCase: el front existente las consume así.
type animalResponse struct {
	AnimalID    int64  `json:"AnimalID"`
	Name        string `json:"Name"`
	Species     string `json:"Species"`
	Breed       string `json:"Breed"`
	Age         *int64 `json:"Age"`
	Gender      string `json:"Gender"`
	ArrivalDate string `json:"ArrivalDate"`
	Status      string `json:"Status"`
}

// Sólo para documentación; el body real se decodifica como fields.Map.
type createAnimalRequest struct {
	Name        string `json:"Name" example:"Rex"`
	Species     string `json:"Species" example:"Dog"`
	Breed       string `json:"Breed"`
	Age         *int64 `json:"Age"`
	Gender      string `json:"Gender"`
	ArrivalDate string `json:"ArrivalDate" example:"2024-03-01"`
	Status      string `json:"Status" example:"Available"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Devuelve todos los animales ordenados por AnimalID.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {object} respond.Envelope
// @Router /api/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param id path int true "AnimalID"
// @Success 200 {object} animalResponse
// @Failure 404 {object} respond.Envelope
// @Router /api/animals/{id} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := respond.PathID(r)
		if !ok {
			respond.NotFound(w, r)
			return
		}

		a, err := svc.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Name y Species son obligatorios. ArrivalDate (YYYY-MM-DD) por defecto hoy; Status por defecto "Available".
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope "campo faltante o inválido"
// @Failure 500 {object} respond.Envelope
// @Router /api/animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
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

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Created(w, "Animal added.", a.ID)
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Update parcial: sólo cambian las claves presentes. Age: null la limpia.
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "AnimalID"
// @Param payload body createAnimalRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/animals/{id} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Animal updated.")
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal
// @Description Borra también sus historias clínicas y solicitudes de adopción.
// @Tags animals
// @Produce json
// @Param id path int true "AnimalID"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /api/animals/{id} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
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
		respond.Success(w, http.StatusOK, "Animal deleted.")
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		AnimalID:    a.ID,
		Name:        a.Name,
		Species:     a.Species,
		Breed:       a.Breed,
		Age:         a.Age,
		Gender:      a.Gender,
		ArrivalDate: a.ArrivalDate.String(),
		Status:      a.Status,
	}
}
