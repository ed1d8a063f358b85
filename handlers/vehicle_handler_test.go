package handlers

import (
	"encoding/json"
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

func newVehicleHandler() *VehicleHandler {
	return &VehicleHandler{Repo: repository.NewMemoryVehicleRepo(demo.Vehicles())}
}

func decodeVehicles(t *testing.T, rec *httptest.ResponseRecorder) []*models.Vehicle {
	t.Helper()
	var list []*models.Vehicle
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	return list
}

func TestVehicleListFiltersByStatus(t *testing.T) {
	h := newVehicleHandler()

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/vehicles?estado=disponible", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeVehicles(t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "WQR456", list[0].Plate)
	assert.Equal(t, "DEF456", list[1].Plate)
}

func TestVehicleListNearExpiryRejectsBadWindow(t *testing.T) {
	h := newVehicleHandler()

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/vehicles?near_expiry_days=soon", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleCreateRequiresPlateAndType(t *testing.T) {
	h := newVehicleHandler()

	body := strings.NewReader(`{"modelo": "FH16"}`)
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/vehicles", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleCreateAndFetch(t *testing.T) {
	h := newVehicleHandler()

	body := strings.NewReader(`{"placa": "JKL012", "tipo": "Turbo", "conductor": "Luis Gómez"}`)
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/vehicles", body))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Vehicle
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.VehicleAvailable, created.Status)

	rec = httptest.NewRecorder()
	h.GetByID(rec, httptest.NewRequest(http.MethodGet, "/vehicles/"+created.ID, nil), created.ID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVehicleGetByIDNotFound(t *testing.T) {
	h := newVehicleHandler()

	rec := httptest.NewRecorder()
	h.GetByID(rec, httptest.NewRequest(http.MethodGet, "/vehicles/nope", nil), "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVehicleUpdateKilometers(t *testing.T) {
	h := newVehicleHandler()

	body := strings.NewReader(`{"kilometraje": 130000}`)
	rec := httptest.NewRecorder()
	h.UpdateKilometers(rec, httptest.NewRequest(http.MethodPut, "/vehicles/1/kilometers", body), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	v, err := h.Repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, 130000, v.Kilometers)
}
