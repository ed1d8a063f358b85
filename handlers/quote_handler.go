package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"incargo/models"
	"incargo/quotes"
	"incargo/repository"
)

type QuoteHandler struct {
	Repo    repository.QuoteRepository
	Manager *quotes.Manager
}

func lifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quotes.ErrNotFound):
		notFound(w, "quote not found")
	case errors.Is(err, quotes.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		serverError(w, err)
	}
}

// List filters: ?estado=, ?cliente_id=, ?start=&end= on fecha_solicitud,
// ?vencidas=true for open quotes already past their vencimiento.
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		list []*models.Quote
		err  error
	)
	switch {
	case q.Get("estado") != "":
		list, err = h.Repo.GetByStatus(q.Get("estado"))
	case q.Get("cliente_id") != "":
		list, err = h.Repo.GetByClient(q.Get("cliente_id"))
	case q.Get("start") != "" && q.Get("end") != "":
		list, err = h.Repo.GetByDateRange(q.Get("start"), q.Get("end"))
	case q.Get("vencidas") == "true":
		list, err = h.Repo.GetExpired(today())
	default:
		list, err = h.Repo.GetAll()
	}
	if err != nil {
		serverError(w, err)
		return
	}
	if list == nil {
		list = []*models.Quote{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data models.CreateQuote
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	if data.ClientID == "" || data.ServiceType == "" {
		badRequest(w, "cliente_id and tipo_servicio are required")
		return
	}

	q, err := h.Manager.Create(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *QuoteHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	q, err := h.Repo.GetByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if q == nil {
		notFound(w, "quote not found")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var data models.UpdateQuote
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		badRequest(w, err.Error())
		return
	}
	data.ID = id

	q, err := h.Repo.Update(&data)
	if err != nil {
		serverError(w, err)
		return
	}
	if q == nil {
		notFound(w, "quote not found")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.Repo.Delete(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if !ok {
		notFound(w, "quote not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *QuoteHandler) Send(w http.ResponseWriter, r *http.Request, id string) {
	q, err := h.Manager.Send(id)
	if err != nil {
		lifecycleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) Approve(w http.ResponseWriter, r *http.Request, id string) {
	q, err := h.Manager.Approve(id)
	if err != nil {
		lifecycleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Reject closes the quote. The reason is optional; rejecting with an empty
// body keeps the existing observaciones.
func (h *QuoteHandler) Reject(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Reason string `json:"motivo"`
	}
	if err := decodeOptional(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	q, err := h.Manager.Reject(id, body.Reason)
	if err != nil {
		lifecycleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) Duplicate(w http.ResponseWriter, r *http.Request, id string) {
	q, err := h.Manager.Duplicate(id)
	if err != nil {
		lifecycleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *QuoteHandler) Convert(w http.ResponseWriter, r *http.Request, id string) {
	svc, err := h.Manager.ConvertToService(id)
	if err != nil {
		lifecycleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// Expire runs the expiry sweep and reports how many quotes moved.
func (h *QuoteHandler) Expire(w http.ResponseWriter, r *http.Request) {
	count, err := h.Manager.MarkExpired()
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"expired": count})
}
