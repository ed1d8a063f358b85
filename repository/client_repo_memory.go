package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

type MemoryClientRepo struct {
	mu   sync.RWMutex
	rows []*models.Client
}

func NewMemoryClientRepo(seed []*models.Client) *MemoryClientRepo {
	return &MemoryClientRepo{rows: append([]*models.Client{}, seed...)}
}

// cloneClient detaches a returned row from the store. The contracted
// services slice is copied too so appends never alias the stored one.
func cloneClient(c *models.Client) *models.Client {
	out := *c
	out.ContractedServices = append([]string{}, c.ContractedServices...)
	return &out
}

func (r *MemoryClientRepo) GetAll() ([]*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Client, len(r.rows))
	for i, c := range r.rows {
		out[i] = cloneClient(c)
	}
	return out, nil
}

func (r *MemoryClientRepo) GetByID(id string) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.rows {
		if c.ID == id {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

func (r *MemoryClientRepo) Create(data *models.CreateClient) (*models.Client, error) {
	now := time.Now().UTC()
	c := &models.Client{
		ID:                 uuid.NewString(),
		CompanyName:        data.CompanyName,
		NIT:                data.NIT,
		Contact:            data.Contact,
		Phone:              data.Phone,
		Email:              data.Email,
		Address:            data.Address,
		City:               data.City,
		Type:               data.Type,
		Status:             data.Status,
		RegisteredAt:       now.Format(dateLayout),
		ContractedServices: append([]string{}, data.ContractedServices...),
		CreditLimit:        data.CreditLimit,
		PendingBalance:     data.PendingBalance,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if c.Status == "" {
		c.Status = models.ClientActive
	}

	r.mu.Lock()
	r.rows = append([]*models.Client{c}, r.rows...)
	r.mu.Unlock()
	return cloneClient(c), nil
}

func (r *MemoryClientRepo) Update(data *models.UpdateClient) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.ID != data.ID {
			continue
		}
		if data.CompanyName != nil {
			c.CompanyName = *data.CompanyName
		}
		if data.NIT != nil {
			c.NIT = *data.NIT
		}
		if data.Contact != nil {
			c.Contact = *data.Contact
		}
		if data.Phone != nil {
			c.Phone = *data.Phone
		}
		if data.Email != nil {
			c.Email = *data.Email
		}
		if data.Address != nil {
			c.Address = *data.Address
		}
		if data.City != nil {
			c.City = *data.City
		}
		if data.Type != nil {
			c.Type = *data.Type
		}
		if data.Status != nil {
			c.Status = *data.Status
		}
		if data.ContractedServices != nil {
			c.ContractedServices = append([]string{}, (*data.ContractedServices)...)
		}
		if data.CreditLimit != nil {
			c.CreditLimit = *data.CreditLimit
		}
		if data.PendingBalance != nil {
			c.PendingBalance = *data.PendingBalance
		}
		c.UpdatedAt = time.Now().UTC()
		return cloneClient(c), nil
	}
	return nil, nil
}

func (r *MemoryClientRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.rows {
		if c.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryClientRepo) GetByType(clientType string) ([]*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Client
	for _, c := range r.rows {
		if c.Type == clientType {
			out = append(out, cloneClient(c))
		}
	}
	return out, nil
}

func (r *MemoryClientRepo) GetActive() ([]*models.Client, error) {
	r.mu.RLock()
	var out []*models.Client
	for _, c := range r.rows {
		if c.Status == models.ClientActive {
			out = append(out, cloneClient(c))
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CompanyName < out[j].CompanyName })
	return out, nil
}

func (r *MemoryClientRepo) Search(term string) ([]*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Client
	for _, c := range r.rows {
		if containsFold(c.CompanyName, term) ||
			strings.Contains(c.NIT, term) ||
			containsFold(c.Contact, term) {
			out = append(out, cloneClient(c))
		}
	}
	return out, nil
}

func (r *MemoryClientRepo) UpdateBalance(id string, balance float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.ID == id {
			c.PendingBalance = balance
			c.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryClientRepo) AddContractedService(id, serviceType string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.ID != id {
			continue
		}
		for _, s := range c.ContractedServices {
			if s == serviceType {
				return false, nil
			}
		}
		c.ContractedServices = append(c.ContractedServices, serviceType)
		c.UpdatedAt = time.Now().UTC()
		return true, nil
	}
	return false, nil
}

func (r *MemoryClientRepo) GetWithPendingBalance() ([]*models.Client, error) {
	r.mu.RLock()
	var out []*models.Client
	for _, c := range r.rows {
		if c.PendingBalance > 0 {
			out = append(out, cloneClient(c))
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].PendingBalance > out[j].PendingBalance })
	return out, nil
}
