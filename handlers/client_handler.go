package handlers

import (
	"encoding/json"
	"net/http"

	"incargo/models"
	"incargo/repository"
)

type ClientHandler struct {
	Repo repository.ClientRepository
}

// List filters: ?q= full-text search, ?tipo_cliente=, ?activos=true,
// ?con_saldo=true for accounts with a pending balance.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		list []*models.Client
		err  error
	)
	switch {
	case q.Get("q") != "":
		list, err = h.Repo.Search(q.Get("q"))
	case q.Get("tipo_cliente") != "":
		list, err = h.Repo.GetByType(q.Get("tipo_cliente"))
	case q.Get("activos") == "true":
		list, err = h.Repo.GetActive()
	case q.Get("con_saldo") == "true":
		list, err = h.Repo.GetWithPendingBalance()
	default:
		list, err = h.Repo.GetAll()
	}
	if err != nil {
		serverError(w, err)
		return
	}
	if list == nil {
		list = []*models.Client{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data models.CreateClient
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	if data.CompanyName == "" || data.NIT == "" {
		badRequest(w, "nombre_empresa and nit are required")
		return
	}

	c, err := h.Repo.Create(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	c, err := h.Repo.GetByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if c == nil {
		notFound(w, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var data models.UpdateClient
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	data.ID = id

	c, err := h.Repo.Update(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	if c == nil {
		notFound(w, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.Repo.Delete(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *ClientHandler) UpdateBalance(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Balance float64 `json:"saldo_pendiente"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, err.Error())
		return
	}

	ok, err := h.Repo.UpdateBalance(id, body.Balance)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// AddContractedService appends a service label to the client's portfolio.
// Responds 200 with added=false when the label was already present.
func (h *ClientHandler) AddContractedService(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		ServiceType string `json:"tipo_servicio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, err.Error())
		return
	}
	if body.ServiceType == "" {
		badRequest(w, "tipo_servicio is required")
		return
	}

	c, err := h.Repo.GetByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if c == nil {
		notFound(w, "client not found")
		return
	}

	added, err := h.Repo.AddContractedService(id, body.ServiceType)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": added})
}
