package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"incargo/models"
	"incargo/repository"
)

type VehicleHandler struct {
	Repo repository.VehicleRepository
}

// List supports the dashboard filters through query parameters:
// ?estado= filters by status, ?near_expiry_days= returns vehicles whose
// documents expire within that window.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		list []*models.Vehicle
		err  error
	)
	switch {
	case q.Get("near_expiry_days") != "":
		days, convErr := strconv.Atoi(q.Get("near_expiry_days"))
		if convErr != nil {
			badRequest(w, "invalid near_expiry_days")
			return
		}
		list, err = h.Repo.GetNearExpiry(days)
	case q.Get("estado") != "":
		list, err = h.Repo.GetByStatus(q.Get("estado"))
	default:
		list, err = h.Repo.GetAll()
	}
	if err != nil {
		serverError(w, err)
		return
	}
	if list == nil {
		list = []*models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data models.CreateVehicle
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	if data.Plate == "" || data.Type == "" {
		badRequest(w, "placa and tipo are required")
		return
	}

	v, err := h.Repo.Create(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	v, err := h.Repo.GetByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if v == nil {
		notFound(w, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var data models.UpdateVehicle
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	data.ID = id

	v, err := h.Repo.Update(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	if v == nil {
		notFound(w, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.Repo.Delete(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *VehicleHandler) UpdateLocation(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Location string `json:"ubicacion_actual"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, err.Error())
		return
	}
	if body.Location == "" {
		badRequest(w, "ubicacion_actual is required")
		return
	}

	ok, err := h.Repo.UpdateLocation(id, body.Location)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *VehicleHandler) UpdateKilometers(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Kilometers int `json:"kilometraje"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, err.Error())
		return
	}

	ok, err := h.Repo.UpdateKilometers(id, body.Kilometers)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}
