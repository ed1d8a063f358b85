package handlers

import (
	"encoding/json"
	"net/http"

	"incargo/models"
	"incargo/repository"
)

type CompanyHandler struct {
	Repo repository.CompanyRepository
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Repo.Get()
	if err != nil {
		serverError(w, err)
		return
	}
	if profile == nil {
		notFound(w, "company profile not configured")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Save replaces the whole letterhead row. There is exactly one profile, so
// create and update are the same operation.
func (h *CompanyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var profile models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		badRequest(w, err.Error())
		return
	}
	if profile.Name == "" || profile.NIT == "" {
		badRequest(w, "nombre_empresa and nit are required")
		return
	}

	if err := h.Repo.Save(&profile); err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &profile)
}
