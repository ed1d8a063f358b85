package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

type MemoryQuoteRepo struct {
	mu   sync.RWMutex
	rows []*models.Quote
}

func NewMemoryQuoteRepo(seed []*models.Quote) *MemoryQuoteRepo {
	return &MemoryQuoteRepo{rows: append([]*models.Quote{}, seed...)}
}

// cloneQuote detaches a returned row from the store. PDF pointer fields are
// replaced wholesale on update, so a shallow copy is enough.
func cloneQuote(q *models.Quote) *models.Quote {
	out := *q
	return &out
}

func (r *MemoryQuoteRepo) GetAll() ([]*models.Quote, error) {
	return r.filter(func(*models.Quote) bool { return true })
}

func (r *MemoryQuoteRepo) GetByID(id string) (*models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.rows {
		if q.ID == id {
			return cloneQuote(q), nil
		}
	}
	return nil, nil
}

func (r *MemoryQuoteRepo) Create(data *models.CreateQuote, number string) (*models.Quote, error) {
	now := time.Now().UTC()
	q := &models.Quote{
		ID:          uuid.NewString(),
		ClientID:    data.ClientID,
		Number:      number,
		ServiceType: data.ServiceType,
		Description: data.Description,
		Origin:      data.Origin,
		Destination: data.Destination,
		RequestedAt: now.Format(dateLayout),
		ValidUntil:  data.ValidUntil,
		Status:      models.QuoteDraft,
		CargoType:   data.CargoType,
		EstWeight:   data.EstWeight,
		EstVolume:   data.EstVolume,
		EstValue:    data.EstValue,
		DiscountPct: data.DiscountPct,
		FinalValue:  models.FinalValueFor(data.EstValue, data.DiscountPct),
		Notes:       data.Notes,
		Terms:       data.Terms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	r.rows = append([]*models.Quote{q}, r.rows...)
	r.mu.Unlock()
	return cloneQuote(q), nil
}

func (r *MemoryQuoteRepo) Update(data *models.UpdateQuote) (*models.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.rows {
		if q.ID != data.ID {
			continue
		}
		if data.ClientID != nil {
			q.ClientID = *data.ClientID
		}
		if data.ServiceType != nil {
			q.ServiceType = *data.ServiceType
		}
		if data.Description != nil {
			q.Description = *data.Description
		}
		if data.Origin != nil {
			q.Origin = *data.Origin
		}
		if data.Destination != nil {
			q.Destination = *data.Destination
		}
		if data.ValidUntil != nil {
			q.ValidUntil = *data.ValidUntil
		}
		if data.Status != nil {
			q.Status = *data.Status
		}
		if data.CargoType != nil {
			q.CargoType = *data.CargoType
		}
		if data.EstWeight != nil {
			q.EstWeight = *data.EstWeight
		}
		if data.EstVolume != nil {
			q.EstVolume = *data.EstVolume
		}
		if data.Notes != nil {
			q.Notes = *data.Notes
		}
		if data.Terms != nil {
			q.Terms = *data.Terms
		}
		// The derived price follows its inputs, never the other way around.
		if data.EstValue != nil || data.DiscountPct != nil {
			if data.EstValue != nil {
				q.EstValue = *data.EstValue
			}
			if data.DiscountPct != nil {
				q.DiscountPct = *data.DiscountPct
			}
			q.FinalValue = models.FinalValueFor(q.EstValue, q.DiscountPct)
		}
		q.UpdatedAt = time.Now().UTC()
		return cloneQuote(q), nil
	}
	return nil, nil
}

func (r *MemoryQuoteRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, q := range r.rows {
		if q.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryQuoteRepo) GetByStatus(status string) ([]*models.Quote, error) {
	return r.filter(func(q *models.Quote) bool { return q.Status == status })
}

func (r *MemoryQuoteRepo) GetByClient(clientID string) ([]*models.Quote, error) {
	return r.filter(func(q *models.Quote) bool { return q.ClientID == clientID })
}

func (r *MemoryQuoteRepo) GetByDateRange(startDate, endDate string) ([]*models.Quote, error) {
	return r.filter(func(q *models.Quote) bool {
		return q.RequestedAt >= startDate && q.RequestedAt <= endDate
	})
}

func (r *MemoryQuoteRepo) GetExpired(todayDate string) ([]*models.Quote, error) {
	return r.filter(func(q *models.Quote) bool {
		return q.ValidUntil < todayDate &&
			(q.Status == models.QuoteDraft || q.Status == models.QuoteSent)
	})
}

func (r *MemoryQuoteRepo) filter(keep func(*models.Quote) bool) ([]*models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Quote
	for _, q := range r.rows {
		if keep(q) {
			out = append(out, cloneQuote(q))
		}
	}
	return out, nil
}

func (r *MemoryQuoteRepo) MarkExpired(todayDate string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, q := range r.rows {
		if q.ValidUntil < todayDate &&
			(q.Status == models.QuoteDraft || q.Status == models.QuoteSent) {
			q.Status = models.QuoteExpired
			q.UpdatedAt = time.Now().UTC()
			count++
		}
	}
	return count, nil
}

func (r *MemoryQuoteRepo) UpdateStatus(id, status string, from ...string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.rows {
		if q.ID != id {
			continue
		}
		if len(from) > 0 {
			allowed := false
			for _, f := range from {
				if q.Status == f {
					allowed = true
					break
				}
			}
			if !allowed {
				return false, nil
			}
		}
		q.Status = status
		q.UpdatedAt = time.Now().UTC()
		return true, nil
	}
	return false, nil
}

func (r *MemoryQuoteRepo) LatestNumber(prefix string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	latest := ""
	for _, q := range r.rows {
		if len(q.Number) >= len(prefix) && q.Number[:len(prefix)] == prefix && q.Number > latest {
			latest = q.Number
		}
	}
	return latest, nil
}

func (r *MemoryQuoteRepo) UpdatePDFInfo(id, path string, createdAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.rows {
		if q.ID == id {
			q.PDFPath = &path
			q.PDFCreatedAt = &createdAt
			return nil
		}
	}
	return nil
}
