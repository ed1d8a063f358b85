package quotes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"incargo/models"
	"incargo/repository"
)

var (
	ErrNotFound     = errors.New("quote not found")
	ErrInvalidState = errors.New("quote status does not allow this operation")
)

// Manager owns the quote lifecycle: numbering, the status machine and the
// conversion into a service. It sits on top of the repository primitives so
// the rules hold across all backends.
type Manager struct {
	Quotes   repository.QuoteRepository
	Services repository.ServiceRepository
	Log      *zap.Logger
}

func NewManager(quotes repository.QuoteRepository, services repository.ServiceRepository, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{Quotes: quotes, Services: services, Log: log}
}

// GenerateNumber produces the next number in the month-scoped sequence,
// COT-YYYYMM-NNNN. The sequence restarts every month.
func (m *Manager) GenerateNumber(now time.Time) (string, error) {
	prefix := fmt.Sprintf("COT-%s-", now.UTC().Format("200601"))
	latest, err := m.Quotes.LatestNumber(prefix)
	if err != nil {
		return "", err
	}
	seq := 1
	if latest != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(latest, prefix))
		if err != nil {
			return "", fmt.Errorf("malformed quote number %q: %w", latest, err)
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

// Create stores a new draft quote under a freshly generated number.
func (m *Manager) Create(data *models.CreateQuote) (*models.Quote, error) {
	number, err := m.GenerateNumber(time.Now())
	if err != nil {
		return nil, err
	}
	q, err := m.Quotes.Create(data, number)
	if err != nil {
		return nil, err
	}
	m.Log.Info("quote created",
		zap.String("id", q.ID),
		zap.String("number", q.Number),
		zap.Float64("valor_final", q.FinalValue))
	return q, nil
}

// transition applies one edge of the status graph. AllowTransition is the
// only place the legal moves are written down; the guarded UpdateStatus
// call just protects against the row moving between the read and the write.
func (m *Manager) transition(id, to string) (*models.Quote, error) {
	q, err := m.Quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}
	if !CanTransition(q.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidState, q.Status, to)
	}

	ok, err := m.Quotes.UpdateStatus(id, to, q.Status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidState, q.Status, to)
	}
	m.Log.Info("quote status changed", zap.String("id", id), zap.String("estado", to))
	return m.Quotes.GetByID(id)
}

// Send moves a draft to enviada.
func (m *Manager) Send(id string) (*models.Quote, error) {
	return m.transition(id, models.QuoteSent)
}

// Approve moves a sent quote to aprobada.
func (m *Manager) Approve(id string) (*models.Quote, error) {
	return m.transition(id, models.QuoteApproved)
}

// Reject closes a draft or sent quote. A non-empty reason replaces the
// observaciones field.
func (m *Manager) Reject(id, reason string) (*models.Quote, error) {
	q, err := m.transition(id, models.QuoteRejected)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return m.Quotes.Update(&models.UpdateQuote{ID: id, Notes: &reason})
	}
	return q, nil
}

// MarkExpired sweeps every open quote whose vencimiento is strictly before
// today. Running it twice in a row mutates nothing the second time.
func (m *Manager) MarkExpired() (int, error) {
	count, err := m.Quotes.MarkExpired(time.Now().UTC().Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	if count > 0 {
		m.Log.Info("quotes expired", zap.Int("count", count))
	}
	return count, nil
}

// Duplicate copies a quote into a fresh draft under a new number. The copy
// keeps the pricing inputs and gets a "COPIA - " description prefix.
func (m *Manager) Duplicate(id string) (*models.Quote, error) {
	src, err := m.Quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNotFound
	}
	return m.Create(&models.CreateQuote{
		ClientID:    src.ClientID,
		ServiceType: src.ServiceType,
		Description: "COPIA - " + src.Description,
		Origin:      src.Origin,
		Destination: src.Destination,
		ValidUntil:  src.ValidUntil,
		CargoType:   src.CargoType,
		EstWeight:   src.EstWeight,
		EstVolume:   src.EstVolume,
		EstValue:    src.EstValue,
		DiscountPct: src.DiscountPct,
		Notes:       src.Notes,
		Terms:       src.Terms,
	})
}

// ConvertToService approves a sent quote and opens a pendiente service
// carrying the client, route, cargo and final value. The two writes are not
// atomic across backends; an approval without a service is the failure mode
// and shows up in the returned error.
func (m *Manager) ConvertToService(id string) (*models.Service, error) {
	q, err := m.Approve(id)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC().Format("2006-01-02")
	svc, err := m.Services.Create(&models.CreateService{
		ClientID:    q.ClientID,
		Type:        q.ServiceType,
		Description: q.Description,
		Origin:      q.Origin,
		Destination: q.Destination,
		StartDate:   today,
		DueDate:     q.ValidUntil,
		CargoType:   q.CargoType,
		WeightKG:    q.EstWeight,
		TotalValue:  q.FinalValue,
		Notes:       "Generado desde cotización " + q.Number,
	})
	if err != nil {
		return nil, fmt.Errorf("quote %s approved but service creation failed: %w", q.Number, err)
	}
	m.Log.Info("quote converted to service",
		zap.String("quote", q.Number),
		zap.String("service_id", svc.ID))
	return svc, nil
}
