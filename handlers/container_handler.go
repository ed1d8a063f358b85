package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"incargo/models"
	"incargo/repository"
)

type ContainerHandler struct {
	Repo repository.ContainerRepository
}

// List filters: ?estado=, ?cliente_id=, ?tipo=, ?reefer=true, ?q= search,
// ?numero= exact lookup, ?near_delivery_days=, ?vencidos=true.
func (h *ContainerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if number := q.Get("numero"); number != "" {
		c, err := h.Repo.GetByNumber(number)
		if err != nil {
			serverError(w, err)
			return
		}
		if c == nil {
			notFound(w, "container not found")
			return
		}
		writeJSON(w, http.StatusOK, c)
		return
	}

	var (
		list []*models.Container
		err  error
	)
	switch {
	case q.Get("near_delivery_days") != "":
		days, convErr := strconv.Atoi(q.Get("near_delivery_days"))
		if convErr != nil {
			badRequest(w, "invalid near_delivery_days")
			return
		}
		list, err = h.Repo.GetNearDelivery(days)
	case q.Get("vencidos") == "true":
		list, err = h.Repo.GetOverdue()
	case q.Get("q") != "":
		list, err = h.Repo.Search(q.Get("q"))
	case q.Get("estado") != "":
		list, err = h.Repo.GetByStatus(q.Get("estado"))
	case q.Get("cliente_id") != "":
		list, err = h.Repo.GetByClient(q.Get("cliente_id"))
	case q.Get("reefer") == "true":
		list, err = h.Repo.GetReefer()
	case q.Get("tipo") != "":
		list, err = h.Repo.GetByType(q.Get("tipo"))
	default:
		list, err = h.Repo.GetAll()
	}
	if err != nil {
		serverError(w, err)
		return
	}
	if list == nil {
		list = []*models.Container{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ContainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data models.CreateContainer
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	if data.Number == "" || data.ClientID == "" {
		badRequest(w, "numero_contenedor and cliente_id are required")
		return
	}

	c, err := h.Repo.Create(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ContainerHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	c, err := h.Repo.GetByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if c == nil {
		notFound(w, "container not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContainerHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var data models.UpdateContainer
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
		notFound(w, "container not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContainerHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.Repo.Delete(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "container not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// UpdateLocation moves the container and writes a tracking event in the
// same call so the history stays aligned with the current position.
func (h *ContainerHandler) UpdateLocation(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Location    string `json:"ubicacion"`
		Description string `json:"descripcion"`
		User        string `json:"usuario"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, err.Error())
		return
	}
	if body.Location == "" {
		badRequest(w, "ubicacion is required")
		return
	}

	ok, err := h.Repo.UpdateLocation(id, body.Location, body.Description, body.User)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "container not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *ContainerHandler) UpdateTemperature(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Temperature *float64 `json:"temperatura"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, err.Error())
		return
	}
	if body.Temperature == nil {
		badRequest(w, "temperatura is required")
		return
	}

	ok, err := h.Repo.UpdateTemperature(id, *body.Temperature)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "container not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Deliver closes out the container. The date is optional and defaults to
// today when the body is empty.
func (h *ContainerHandler) Deliver(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Date string `json:"fecha"`
	}
	if err := decodeOptional(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	ok, err := h.Repo.Deliver(id, body.Date)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "container not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"delivered": true})
}

func (h *ContainerHandler) GetTracking(w http.ResponseWriter, r *http.Request, id string) {
	events, err := h.Repo.GetTracking(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if events == nil {
		events = []*models.ContainerTracking{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *ContainerHandler) AddTrackingEvent(w http.ResponseWriter, r *http.Request, id string) {
	var event models.ContainerTracking
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		badRequest(w, err.Error())
		return
	}
	if event.Location == "" {
		badRequest(w, "ubicacion is required")
		return
	}
	event.ContainerID = id

	c, err := h.Repo.GetByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if c == nil {
		notFound(w, "container not found")
		return
	}

	created, err := h.Repo.AddTrackingEvent(&event)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
