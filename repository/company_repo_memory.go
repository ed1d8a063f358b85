package repository

import (
	"sync"
	"time"

	"incargo/models"
)

type MemoryCompanyRepo struct {
	mu      sync.RWMutex
	profile *models.CompanyProfile
}

func NewMemoryCompanyRepo(seed *models.CompanyProfile) *MemoryCompanyRepo {
	return &MemoryCompanyRepo{profile: seed}
}

// cloneProfile detaches the row from the store, phone list included.
func cloneProfile(p *models.CompanyProfile) *models.CompanyProfile {
	out := *p
	out.Phones = append([]models.PhoneEntry{}, p.Phones...)
	return &out
}

func (r *MemoryCompanyRepo) Save(profile *models.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := cloneProfile(profile)
	p.ID = 1
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.profile = p
	return nil
}

func (r *MemoryCompanyRepo) Get() (*models.CompanyProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return nil, nil
	}
	return cloneProfile(r.profile), nil
}
