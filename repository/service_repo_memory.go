package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

type MemoryServiceRepo struct {
	mu   sync.RWMutex
	rows []*models.Service
}

func NewMemoryServiceRepo(seed []*models.Service) *MemoryServiceRepo {
	return &MemoryServiceRepo{rows: append([]*models.Service{}, seed...)}
}

// cloneService detaches a returned row from the store. Pointer fields are
// replaced wholesale on update, never mutated in place, so a shallow copy
// is enough.
func cloneService(s *models.Service) *models.Service {
	out := *s
	return &out
}

func (r *MemoryServiceRepo) GetAll() ([]*models.Service, error) {
	return r.filter(func(*models.Service) bool { return true })
}

func (r *MemoryServiceRepo) GetByID(id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.rows {
		if s.ID == id {
			return cloneService(s), nil
		}
	}
	return nil, nil
}

func (r *MemoryServiceRepo) Create(data *models.CreateService) (*models.Service, error) {
	now := time.Now().UTC()
	s := &models.Service{
		ID:          uuid.NewString(),
		ClientID:    data.ClientID,
		Type:        data.Type,
		Description: data.Description,
		Origin:      data.Origin,
		Destination: data.Destination,
		StartDate:   data.StartDate,
		DueDate:     data.DueDate,
		Status:      models.ServicePending,
		VehicleID:   data.VehicleID,
		Driver:      data.Driver,
		CargoType:   data.CargoType,
		WeightKG:    data.WeightKG,
		TotalValue:  data.TotalValue,
		Notes:       data.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	r.rows = append([]*models.Service{s}, r.rows...)
	r.mu.Unlock()
	return cloneService(s), nil
}

func (r *MemoryServiceRepo) Update(data *models.UpdateService) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.rows {
		if s.ID != data.ID {
			continue
		}
		if data.ClientID != nil {
			s.ClientID = *data.ClientID
		}
		if data.Type != nil {
			s.Type = *data.Type
		}
		if data.Description != nil {
			s.Description = *data.Description
		}
		if data.Origin != nil {
			s.Origin = *data.Origin
		}
		if data.Destination != nil {
			s.Destination = *data.Destination
		}
		if data.StartDate != nil {
			s.StartDate = *data.StartDate
		}
		if data.DueDate != nil {
			s.DueDate = *data.DueDate
		}
		if data.CompletedAt != nil {
			s.CompletedAt = data.CompletedAt
		}
		if data.Status != nil {
			s.Status = *data.Status
		}
		if data.VehicleID != nil {
			s.VehicleID = data.VehicleID
		}
		if data.Driver != nil {
			s.Driver = *data.Driver
		}
		if data.CargoType != nil {
			s.CargoType = *data.CargoType
		}
		if data.WeightKG != nil {
			s.WeightKG = *data.WeightKG
		}
		if data.TotalValue != nil {
			s.TotalValue = *data.TotalValue
		}
		if data.Notes != nil {
			s.Notes = *data.Notes
		}
		s.UpdatedAt = time.Now().UTC()
		return cloneService(s), nil
	}
	return nil, nil
}

func (r *MemoryServiceRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.rows {
		if s.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryServiceRepo) GetByStatus(status string) ([]*models.Service, error) {
	return r.filter(func(s *models.Service) bool { return s.Status == status })
}

func (r *MemoryServiceRepo) GetByClient(clientID string) ([]*models.Service, error) {
	return r.filter(func(s *models.Service) bool { return s.ClientID == clientID })
}

func (r *MemoryServiceRepo) GetByVehicle(vehicleID string) ([]*models.Service, error) {
	return r.filter(func(s *models.Service) bool {
		return s.VehicleID != nil && *s.VehicleID == vehicleID
	})
}

func (r *MemoryServiceRepo) GetByDateRange(startDate, endDate string) ([]*models.Service, error) {
	return r.filter(func(s *models.Service) bool {
		return s.StartDate >= startDate && s.StartDate <= endDate
	})
}

func (r *MemoryServiceRepo) GetActive() ([]*models.Service, error) {
	return r.filter(func(s *models.Service) bool {
		return s.Status == models.ServicePending || s.Status == models.ServiceInProgress
	})
}

func (r *MemoryServiceRepo) GetOverdue() ([]*models.Service, error) {
	now := today()
	return r.filter(func(s *models.Service) bool {
		active := s.Status == models.ServicePending || s.Status == models.ServiceInProgress
		return active && s.DueDate < now
	})
}

func (r *MemoryServiceRepo) filter(keep func(*models.Service) bool) ([]*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Service
	for _, s := range r.rows {
		if keep(s) {
			out = append(out, cloneService(s))
		}
	}
	return out, nil
}

func (r *MemoryServiceRepo) UpdateStatus(id, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.rows {
		if s.ID == id {
			s.Status = status
			if status == models.ServiceCompleted {
				done := time.Now().UTC().Format(time.RFC3339)
				s.CompletedAt = &done
			}
			s.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryServiceRepo) Cancel(id, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.rows {
		if s.ID == id {
			s.Status = models.ServiceCancelled
			if reason != "" {
				s.Notes = reason
			}
			s.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryServiceRepo) AssignVehicle(serviceID, vehicleID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.rows {
		if s.ID == serviceID {
			s.VehicleID = &vehicleID
			s.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryServiceRepo) RevenueByPeriod(startDate, endDate string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, s := range r.rows {
		if s.Status == models.ServiceCompleted && s.StartDate >= startDate && s.StartDate <= endDate {
			total += s.TotalValue
		}
	}
	return total, nil
}
