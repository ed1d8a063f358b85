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
	"incargo/quotes"
	"incargo/repository"
)

func newQuoteHandler() *QuoteHandler {
	quoteRepo := repository.NewMemoryQuoteRepo(demo.Quotes())
	serviceRepo := repository.NewMemoryServiceRepo(nil)
	return &QuoteHandler{
		Repo:    quoteRepo,
		Manager: quotes.NewManager(quoteRepo, serviceRepo, nil),
	}
}

func TestQuoteCreateDerivesNumberAndPrice(t *testing.T) {
	h := newQuoteHandler()

	body := strings.NewReader(`{
		"cliente_id": "1",
		"tipo_servicio": "transporte_carga",
		"valor_estimado": 1000000,
		"descuento_porcentaje": 10,
		"fecha_vencimiento": "2030-01-01"
	}`)
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/quotes", body))
	require.Equal(t, http.StatusCreated, rec.Code)

	var q models.Quote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&q))
	assert.True(t, strings.HasPrefix(q.Number, "COT-"), "got number %q", q.Number)
	assert.Equal(t, models.QuoteDraft, q.Status)
	assert.Equal(t, 900000.0, q.FinalValue)
}

func TestQuoteCreateRequiresClientAndServiceType(t *testing.T) {
	h := newQuoteHandler()

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteApproveSeededSentQuote(t *testing.T) {
	h := newQuoteHandler()

	rec := httptest.NewRecorder()
	h.Approve(rec, httptest.NewRequest(http.MethodPost, "/quotes/1/approve", nil), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var q models.Quote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&q))
	assert.Equal(t, models.QuoteApproved, q.Status)
}

func TestQuoteSendOnSentQuoteConflicts(t *testing.T) {
	h := newQuoteHandler()

	// seeded quote is already enviada, sending again is not a legal move
	rec := httptest.NewRecorder()
	h.Send(rec, httptest.NewRequest(http.MethodPost, "/quotes/1/send", nil), "1")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestQuoteLifecycleOnMissingQuote(t *testing.T) {
	h := newQuoteHandler()

	rec := httptest.NewRecorder()
	h.Approve(rec, httptest.NewRequest(http.MethodPost, "/quotes/nope/approve", nil), "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuoteRejectStoresReason(t *testing.T) {
	h := newQuoteHandler()

	body := strings.NewReader(`{"motivo": "Tarifa fuera de presupuesto"}`)
	rec := httptest.NewRecorder()
	h.Reject(rec, httptest.NewRequest(http.MethodPost, "/quotes/1/reject", body), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var q models.Quote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&q))
	assert.Equal(t, models.QuoteRejected, q.Status)
	assert.Contains(t, q.Notes, "Tarifa fuera de presupuesto")
}

func TestQuoteRejectWithoutBody(t *testing.T) {
	h := newQuoteHandler()

	rec := httptest.NewRecorder()
	h.Reject(rec, httptest.NewRequest(http.MethodPost, "/quotes/1/reject", nil), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var q models.Quote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&q))
	assert.Equal(t, models.QuoteRejected, q.Status)
	// no reason given, the original observaciones survive
	assert.Contains(t, q.Notes, "vehículo refrigerado")
}

func TestQuoteExpireSweep(t *testing.T) {
	h := newQuoteHandler()

	// the seeded quote's vencimiento is long past, one row should move
	rec := httptest.NewRecorder()
	h.Expire(rec, httptest.NewRequest(http.MethodPost, "/quotes/expire", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]int
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, 1, out["expired"])

	// second sweep finds nothing left to expire
	rec = httptest.NewRecorder()
	h.Expire(rec, httptest.NewRequest(http.MethodPost, "/quotes/expire", nil))
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, 0, out["expired"])
}

func TestQuoteListByStatus(t *testing.T) {
	h := newQuoteHandler()

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/quotes?estado=enviada", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []*models.Quote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "COT-202408-0001", list[0].Number)
}
