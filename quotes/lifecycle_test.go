package quotes

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"incargo/models"
	"incargo/repository"
)

func newTestManager(t *testing.T, seed []*models.Quote) *Manager {
	t.Helper()
	return NewManager(
		repository.NewMemoryQuoteRepo(seed),
		repository.NewMemoryServiceRepo(nil),
		nil,
	)
}

func draftQuote(t *testing.T, m *Manager) *models.Quote {
	t.Helper()
	q, err := m.Create(&models.CreateQuote{
		ClientID:    "2",
		ServiceType: models.ServiceCargo,
		Description: "Transporte refrigerado Cali-Bogotá",
		Origin:      "Cali",
		Destination: "Bogotá",
		ValidUntil:  time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		CargoType:   "Productos refrigerados",
		EstWeight:   12000,
		EstVolume:   45,
		EstValue:    2800000,
		DiscountPct: 5,
	})
	require.NoError(t, err)
	return q
}

func TestCreateDerivesFinalValue(t *testing.T) {
	m := newTestManager(t, nil)
	q := draftQuote(t, m)

	require.Equal(t, models.QuoteDraft, q.Status)
	require.InDelta(t, 2660000, q.FinalValue, 0.01)
}

func TestUpdateRecomputesFinalValue(t *testing.T) {
	m := newTestManager(t, nil)
	q := draftQuote(t, m)

	discount := 10.0
	updated, err := m.Quotes.Update(&models.UpdateQuote{ID: q.ID, DiscountPct: &discount})
	require.NoError(t, err)
	require.InDelta(t, 2520000, updated.FinalValue, 0.01)

	// A patch that touches neither input leaves the derived value alone.
	notes := "cliente pidió ajuste de fechas"
	updated, err = m.Quotes.Update(&models.UpdateQuote{ID: q.ID, Notes: &notes})
	require.NoError(t, err)
	require.InDelta(t, 2520000, updated.FinalValue, 0.01)
}

func TestNumberingIsMonthScoped(t *testing.T) {
	m := newTestManager(t, nil)
	prefix := fmt.Sprintf("COT-%s-", time.Now().UTC().Format("200601"))

	first := draftQuote(t, m)
	require.Equal(t, prefix+"0001", first.Number)

	second := draftQuote(t, m)
	require.Equal(t, prefix+"0002", second.Number)
}

func TestSendApproveGuards(t *testing.T) {
	m := newTestManager(t, nil)
	q := draftQuote(t, m)

	// A draft cannot be approved straight away.
	_, err := m.Approve(q.ID)
	require.ErrorIs(t, err, ErrInvalidState)

	sent, err := m.Send(q.ID)
	require.NoError(t, err)
	require.Equal(t, models.QuoteSent, sent.Status)

	// Sending twice is rejected.
	_, err = m.Send(q.ID)
	require.ErrorIs(t, err, ErrInvalidState)

	approved, err := m.Approve(q.ID)
	require.NoError(t, err)
	require.Equal(t, models.QuoteApproved, approved.Status)

	// Approved is terminal.
	_, err = m.Reject(q.ID, "tarde")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRejectKeepsReason(t *testing.T) {
	m := newTestManager(t, nil)
	q := draftQuote(t, m)

	rejected, err := m.Reject(q.ID, "precio fuera de presupuesto")
	require.NoError(t, err)
	require.Equal(t, models.QuoteRejected, rejected.Status)
	require.Equal(t, "precio fuera de presupuesto", rejected.Notes)
}

func TestTransitionOnMissingQuote(t *testing.T) {
	m := newTestManager(t, nil)
	_, err := m.Send("no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkExpiredIsIdempotent(t *testing.T) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	seed := []*models.Quote{
		{ID: "a", Number: "COT-202401-0001", Status: models.QuoteSent, ValidUntil: yesterday},
		{ID: "b", Number: "COT-202401-0002", Status: models.QuoteDraft, ValidUntil: yesterday},
		{ID: "c", Number: "COT-202401-0003", Status: models.QuoteApproved, ValidUntil: yesterday},
	}
	m := newTestManager(t, seed)

	count, err := m.MarkExpired()
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = m.MarkExpired()
	require.NoError(t, err)
	require.Equal(t, 0, count)

	// The approved quote is untouched.
	q, err := m.Quotes.GetByID("c")
	require.NoError(t, err)
	require.Equal(t, models.QuoteApproved, q.Status)
}

func TestExpiryBoundaryIsStrict(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	m := newTestManager(t, []*models.Quote{
		{ID: "edge", Number: "COT-202401-0001", Status: models.QuoteSent, ValidUntil: today},
	})

	count, err := m.MarkExpired()
	require.NoError(t, err)
	require.Equal(t, 0, count, "a quote expiring today is still open")
}

func TestDuplicate(t *testing.T) {
	m := newTestManager(t, nil)
	q := draftQuote(t, m)
	_, err := m.Send(q.ID)
	require.NoError(t, err)

	copy, err := m.Duplicate(q.ID)
	require.NoError(t, err)
	require.NotEqual(t, q.ID, copy.ID)
	require.NotEqual(t, q.Number, copy.Number)
	require.Equal(t, models.QuoteDraft, copy.Status)
	require.Equal(t, "COPIA - "+q.Description, copy.Description)
	require.InDelta(t, q.FinalValue, copy.FinalValue, 0.01)
}

func TestConvertToService(t *testing.T) {
	m := newTestManager(t, nil)
	q := draftQuote(t, m)
	_, err := m.Send(q.ID)
	require.NoError(t, err)

	svc, err := m.ConvertToService(q.ID)
	require.NoError(t, err)
	require.Equal(t, models.ServicePending, svc.Status)
	require.Equal(t, q.ClientID, svc.ClientID)
	require.InDelta(t, 2660000, svc.TotalValue, 0.01)

	got, err := m.Quotes.GetByID(q.ID)
	require.NoError(t, err)
	require.Equal(t, models.QuoteApproved, got.Status)

	// Converting a draft is rejected before anything is written.
	other := draftQuote(t, m)
	_, err = m.ConvertToService(other.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

// Every lifecycle guard flows through the transition graph, so each
// terminal state must refuse every outgoing move the Manager can attempt.
func TestTerminalStatesRefuseAllMoves(t *testing.T) {
	for _, terminal := range []string{models.QuoteApproved, models.QuoteRejected, models.QuoteExpired} {
		m := newTestManager(t, []*models.Quote{
			{ID: "t", Number: "COT-202401-0001", Status: terminal},
		})

		_, err := m.Send("t")
		require.ErrorIs(t, err, ErrInvalidState, "send from %s", terminal)
		_, err = m.Approve("t")
		require.ErrorIs(t, err, ErrInvalidState, "approve from %s", terminal)
		_, err = m.Reject("t", "")
		require.ErrorIs(t, err, ErrInvalidState, "reject from %s", terminal)
	}
}

func TestCanTransition(t *testing.T) {
	require.True(t, CanTransition(models.QuoteDraft, models.QuoteSent))
	require.True(t, CanTransition(models.QuoteDraft, models.QuoteRejected))
	require.True(t, CanTransition(models.QuoteSent, models.QuoteApproved))
	require.False(t, CanTransition(models.QuoteDraft, models.QuoteApproved))
	require.False(t, CanTransition(models.QuoteApproved, models.QuoteSent))
	require.False(t, CanTransition(models.QuoteExpired, models.QuoteDraft))
}
