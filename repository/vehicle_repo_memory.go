package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

// MemoryVehicleRepo backs the fleet with a seeded in-memory slice. New rows
// are prepended, matching the demo fixtures' newest-first ordering.
type MemoryVehicleRepo struct {
	mu   sync.RWMutex
	rows []*models.Vehicle
}

func NewMemoryVehicleRepo(seed []*models.Vehicle) *MemoryVehicleRepo {
	return &MemoryVehicleRepo{rows: append([]*models.Vehicle{}, seed...)}
}

// cloneVehicle detaches a returned row from the store so callers can read
// it without holding the lock while a concurrent update mutates the row.
func cloneVehicle(v *models.Vehicle) *models.Vehicle {
	out := *v
	return &out
}

func cloneVehicles(rows []*models.Vehicle) []*models.Vehicle {
	out := make([]*models.Vehicle, len(rows))
	for i, v := range rows {
		out[i] = cloneVehicle(v)
	}
	return out
}

func (r *MemoryVehicleRepo) GetAll() ([]*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneVehicles(r.rows), nil
}

func (r *MemoryVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.rows {
		if v.ID == id {
			return cloneVehicle(v), nil
		}
	}
	return nil, nil
}

func (r *MemoryVehicleRepo) Create(data *models.CreateVehicle) (*models.Vehicle, error) {
	now := time.Now().UTC()
	v := &models.Vehicle{
		ID:           uuid.NewString(),
		Plate:        data.Plate,
		Type:         data.Type,
		Model:        data.Model,
		Make:         data.Make,
		Year:         data.Year,
		Driver:       data.Driver,
		Status:       data.Status,
		SoatExpiry:   data.SoatExpiry,
		TechExpiry:   data.TechExpiry,
		Location:     data.Location,
		Kilometers:   data.Kilometers,
		CapacityTons: data.CapacityTons,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if v.Status == "" {
		v.Status = models.VehicleAvailable
	}

	r.mu.Lock()
	r.rows = append([]*models.Vehicle{v}, r.rows...)
	r.mu.Unlock()
	return cloneVehicle(v), nil
}

func (r *MemoryVehicleRepo) Update(data *models.UpdateVehicle) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if v.ID != data.ID {
			continue
		}
		if data.Plate != nil {
			v.Plate = *data.Plate
		}
		if data.Type != nil {
			v.Type = *data.Type
		}
		if data.Model != nil {
			v.Model = *data.Model
		}
		if data.Make != nil {
			v.Make = *data.Make
		}
		if data.Year != nil {
			v.Year = *data.Year
		}
		if data.Driver != nil {
			v.Driver = *data.Driver
		}
		if data.Status != nil {
			v.Status = *data.Status
		}
		if data.SoatExpiry != nil {
			v.SoatExpiry = *data.SoatExpiry
		}
		if data.TechExpiry != nil {
			v.TechExpiry = *data.TechExpiry
		}
		if data.Location != nil {
			v.Location = *data.Location
		}
		if data.Kilometers != nil {
			v.Kilometers = *data.Kilometers
		}
		if data.CapacityTons != nil {
			v.CapacityTons = *data.CapacityTons
		}
		v.UpdatedAt = time.Now().UTC()
		return cloneVehicle(v), nil
	}
	return nil, nil
}

func (r *MemoryVehicleRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.rows {
		if v.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryVehicleRepo) GetByStatus(status string) ([]*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Vehicle
	for _, v := range r.rows {
		if v.Status == status {
			out = append(out, cloneVehicle(v))
		}
	}
	return out, nil
}

func (r *MemoryVehicleRepo) GetNearExpiry(days int) ([]*models.Vehicle, error) {
	cutoff := dateIn(days)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Vehicle
	for _, v := range r.rows {
		if v.SoatExpiry <= cutoff || v.TechExpiry <= cutoff {
			out = append(out, cloneVehicle(v))
		}
	}
	return out, nil
}

func (r *MemoryVehicleRepo) UpdateLocation(id, location string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if v.ID == id {
			v.Location = location
			v.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryVehicleRepo) UpdateKilometers(id string, km int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if v.ID == id {
			v.Kilometers = km
			v.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}
