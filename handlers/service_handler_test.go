package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incargo/demo"
	"incargo/models"
	"incargo/repository"
)

func newServiceHandler() *ServiceHandler {
	return &ServiceHandler{Repo: repository.NewMemoryServiceRepo(demo.Services())}
}

func TestServiceCancelWithoutBody(t *testing.T) {
	h := newServiceHandler()

	rec := httptest.NewRecorder()
	h.Cancel(rec, httptest.NewRequest(http.MethodPost, "/services/1/cancel", nil), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	s, err := h.Repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, models.ServiceCancelled, s.Status)
	// no reason supplied, the existing observaciones stay
	assert.Equal(t, "Entrega en horario de oficina", s.Notes)
}

func TestServiceCancelWithReason(t *testing.T) {
	h := newServiceHandler()

	body := strings.NewReader(`{"motivo": "Vehículo varado en ruta"}`)
	rec := httptest.NewRecorder()
	h.Cancel(rec, httptest.NewRequest(http.MethodPost, "/services/1/cancel", body), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	s, err := h.Repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Vehículo varado en ruta", s.Notes)
}

func TestServiceUpdateStatusRequiresValue(t *testing.T) {
	h := newServiceHandler()

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, httptest.NewRequest(http.MethodPut, "/services/1/status", strings.NewReader(`{}`)), "1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
