package repository

import (
	"time"

	"incargo/models"
)

// QuoteRepository persists quotes. The lifecycle rules (numbering, status
// machine, derived value on updates) live in the quotes package; this layer
// only offers the guarded primitives they need.
type QuoteRepository interface {
	GetAll() ([]*models.Quote, error)
	GetByID(id string) (*models.Quote, error)
	// Create stores a new quote in borrador with the supplied number, stamps
	// fecha_solicitud with the current date and derives valor_final.
	Create(data *models.CreateQuote, number string) (*models.Quote, error)
	Update(data *models.UpdateQuote) (*models.Quote, error)
	Delete(id string) (bool, error)
	GetByStatus(status string) ([]*models.Quote, error)
	GetByClient(clientID string) ([]*models.Quote, error)
	// GetByDateRange filters on fecha_solicitud, bounds inclusive.
	GetByDateRange(startDate, endDate string) ([]*models.Quote, error)
	// GetExpired returns quotes still in borrador or enviada whose
	// fecha_vencimiento is strictly before today.
	GetExpired(today string) ([]*models.Quote, error)
	// MarkExpired flips those same quotes to vencida and reports how many
	// rows changed. Running it twice in a row mutates zero rows.
	MarkExpired(today string) (int, error)
	// UpdateStatus sets estado; when from states are given the change only
	// applies if the current status is one of them.
	UpdateStatus(id, status string, from ...string) (bool, error)
	// LatestNumber returns the newest quote number with the given prefix,
	// or "" when none exists.
	LatestNumber(prefix string) (string, error)
	UpdatePDFInfo(id, path string, createdAt time.Time) error
}
