package handlers

import (
	"encoding/json"
	"net/http"

	"incargo/models"
	"incargo/repository"
)

type ServiceHandler struct {
	Repo repository.ServiceRepository
}

// List filters: ?estado=, ?cliente_id=, ?vehiculo_id=, ?start=&end= on
// fecha_inicio, ?activos=true, ?vencidos=true.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		list []*models.Service
		err  error
	)
	switch {
	case q.Get("estado") != "":
		list, err = h.Repo.GetByStatus(q.Get("estado"))
	case q.Get("cliente_id") != "":
		list, err = h.Repo.GetByClient(q.Get("cliente_id"))
	case q.Get("vehiculo_id") != "":
		list, err = h.Repo.GetByVehicle(q.Get("vehiculo_id"))
	case q.Get("start") != "" && q.Get("end") != "":
		list, err = h.Repo.GetByDateRange(q.Get("start"), q.Get("end"))
	case q.Get("activos") == "true":
		list, err = h.Repo.GetActive()
	case q.Get("vencidos") == "true":
		list, err = h.Repo.GetOverdue()
	default:
		list, err = h.Repo.GetAll()
	}
	if err != nil {
		serverError(w, err)
		return
	}
	if list == nil {
		list = []*models.Service{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data models.CreateService
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	if data.ClientID == "" || data.Type == "" {
		badRequest(w, "cliente_id and tipo_servicio are required")
		return
	}

	s, err := h.Repo.Create(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *ServiceHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	s, err := h.Repo.GetByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if s == nil {
		notFound(w, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var data models.UpdateService
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	data.ID = id

	s, err := h.Repo.Update(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	if s == nil {
		notFound(w, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.Repo.Delete(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *ServiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, err.Error())
		return
	}
	if body.Status == "" {
		badRequest(w, "estado is required")
		return
	}

	ok, err := h.Repo.UpdateStatus(id, body.Status)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Cancel aborts the service. The reason is optional.
func (h *ServiceHandler) Cancel(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Reason string `json:"motivo"`
	}
	if err := decodeOptional(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	ok, err := h.Repo.Cancel(id, body.Reason)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

func (h *ServiceHandler) AssignVehicle(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		VehicleID string `json:"vehiculo_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, err.Error())
		return
	}
	if body.VehicleID == "" {
		badRequest(w, "vehiculo_id is required")
		return
	}

	ok, err := h.Repo.AssignVehicle(id, body.VehicleID)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"assigned": true})
}
