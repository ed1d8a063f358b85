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

func newContainerHandler() *ContainerHandler {
	return &ContainerHandler{Repo: repository.NewMemoryContainerRepo(demo.Containers())}
}

func TestContainerDeliverWithoutBody(t *testing.T) {
	h := newContainerHandler()

	rec := httptest.NewRecorder()
	h.Deliver(rec, httptest.NewRequest(http.MethodPost, "/containers/1/deliver", nil), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	c, err := h.Repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, models.ContainerDelivered, c.Status)
	require.NotNil(t, c.ActDelivery)
	assert.Equal(t, today(), *c.ActDelivery)
}

func TestContainerDeliverWithExplicitDate(t *testing.T) {
	h := newContainerHandler()

	body := strings.NewReader(`{"fecha": "2024-08-31"}`)
	rec := httptest.NewRecorder()
	h.Deliver(rec, httptest.NewRequest(http.MethodPost, "/containers/1/deliver", body), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	c, err := h.Repo.GetByID("1")
	require.NoError(t, err)
	require.NotNil(t, c.ActDelivery)
	assert.Equal(t, "2024-08-31", *c.ActDelivery)
}

func TestContainerUpdateLocationRequiresValue(t *testing.T) {
	h := newContainerHandler()

	rec := httptest.NewRecorder()
	h.UpdateLocation(rec, httptest.NewRequest(http.MethodPut, "/containers/1/location", strings.NewReader(`{}`)), "1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
