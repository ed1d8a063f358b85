package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

type MemoryContainerRepo struct {
	mu     sync.RWMutex
	rows   []*models.Container
	events []*models.ContainerTracking
}

func NewMemoryContainerRepo(seed []*models.Container) *MemoryContainerRepo {
	return &MemoryContainerRepo{rows: append([]*models.Container{}, seed...)}
}

// cloneContainer detaches a returned row from the store. Temperature and
// delivery pointers are replaced wholesale on update, so a shallow copy is
// enough. Tracking events are immutable after creation and need no copy.
func cloneContainer(c *models.Container) *models.Container {
	out := *c
	return &out
}

func (r *MemoryContainerRepo) GetAll() ([]*models.Container, error) {
	return r.filter(func(*models.Container) bool { return true })
}

func (r *MemoryContainerRepo) GetByID(id string) (*models.Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.rows {
		if c.ID == id {
			return cloneContainer(c), nil
		}
	}
	return nil, nil
}

func (r *MemoryContainerRepo) GetByNumber(number string) (*models.Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.rows {
		if c.Number == number {
			return cloneContainer(c), nil
		}
	}
	return nil, nil
}

func (r *MemoryContainerRepo) Create(data *models.CreateContainer) (*models.Container, error) {
	now := time.Now().UTC()
	c := &models.Container{
		ID:           uuid.NewString(),
		Number:       data.Number,
		Type:         data.Type,
		Size:         data.Size,
		ClientID:     data.ClientID,
		Origin:       data.Origin,
		Destination:  data.Destination,
		ArrivalDate:  data.ArrivalDate,
		EstDelivery:  data.EstDelivery,
		Status:       models.ContainerInTransit,
		Location:     data.Location,
		TargetTemp:   data.TargetTemp,
		GrossWeight:  data.GrossWeight,
		NetWeight:    data.NetWeight,
		Goods:        data.Goods,
		Notes:        data.Notes,
		BillOfLading: data.BillOfLading,
		Carrier:      data.Carrier,
		Vessel:       data.Vessel,
		Voyage:       data.Voyage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.mu.Lock()
	r.rows = append([]*models.Container{c}, r.rows...)
	r.mu.Unlock()
	return cloneContainer(c), nil
}

func (r *MemoryContainerRepo) Update(data *models.UpdateContainer) (*models.Container, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.ID != data.ID {
			continue
		}
		if data.Number != nil {
			c.Number = *data.Number
		}
		if data.Type != nil {
			c.Type = *data.Type
		}
		if data.Size != nil {
			c.Size = *data.Size
		}
		if data.ClientID != nil {
			c.ClientID = *data.ClientID
		}
		if data.Origin != nil {
			c.Origin = *data.Origin
		}
		if data.Destination != nil {
			c.Destination = *data.Destination
		}
		if data.ArrivalDate != nil {
			c.ArrivalDate = *data.ArrivalDate
		}
		if data.EstDelivery != nil {
			c.EstDelivery = *data.EstDelivery
		}
		if data.ActDelivery != nil {
			c.ActDelivery = data.ActDelivery
		}
		if data.Status != nil {
			c.Status = *data.Status
		}
		if data.Location != nil {
			c.Location = *data.Location
		}
		if data.CurrentTemp != nil {
			c.CurrentTemp = data.CurrentTemp
		}
		if data.TargetTemp != nil {
			c.TargetTemp = data.TargetTemp
		}
		if data.GrossWeight != nil {
			c.GrossWeight = *data.GrossWeight
		}
		if data.NetWeight != nil {
			c.NetWeight = *data.NetWeight
		}
		if data.Goods != nil {
			c.Goods = *data.Goods
		}
		if data.Notes != nil {
			c.Notes = *data.Notes
		}
		if data.BillOfLading != nil {
			c.BillOfLading = *data.BillOfLading
		}
		if data.Carrier != nil {
			c.Carrier = *data.Carrier
		}
		if data.Vessel != nil {
			c.Vessel = *data.Vessel
		}
		if data.Voyage != nil {
			c.Voyage = *data.Voyage
		}
		c.UpdatedAt = time.Now().UTC()
		return cloneContainer(c), nil
	}
	return nil, nil
}

func (r *MemoryContainerRepo) Delete(id string) (bool, error) {
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

func (r *MemoryContainerRepo) GetByStatus(status string) ([]*models.Container, error) {
	return r.filter(func(c *models.Container) bool { return c.Status == status })
}

func (r *MemoryContainerRepo) GetByClient(clientID string) ([]*models.Container, error) {
	return r.filter(func(c *models.Container) bool { return c.ClientID == clientID })
}

func (r *MemoryContainerRepo) GetByType(containerType string) ([]*models.Container, error) {
	return r.filter(func(c *models.Container) bool { return c.Type == containerType })
}

func (r *MemoryContainerRepo) GetReefer() ([]*models.Container, error) {
	return r.GetByType(models.ContainerReefer)
}

func (r *MemoryContainerRepo) GetNearDelivery(days int) ([]*models.Container, error) {
	cutoff := dateIn(days)
	return r.filter(func(c *models.Container) bool {
		return c.Status != models.ContainerDelivered &&
			c.Status != models.ContainerReturned &&
			c.EstDelivery <= cutoff
	})
}

func (r *MemoryContainerRepo) GetOverdue() ([]*models.Container, error) {
	now := today()
	return r.filter(func(c *models.Container) bool {
		return c.Status != models.ContainerDelivered &&
			c.Status != models.ContainerReturned &&
			c.EstDelivery < now
	})
}

func (r *MemoryContainerRepo) Search(term string) ([]*models.Container, error) {
	return r.filter(func(c *models.Container) bool {
		return containsFold(c.Number, term) ||
			containsFold(c.BillOfLading, term) ||
			containsFold(c.Carrier, term) ||
			containsFold(c.Goods, term)
	})
}

func (r *MemoryContainerRepo) filter(keep func(*models.Container) bool) ([]*models.Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Container
	for _, c := range r.rows {
		if keep(c) {
			out = append(out, cloneContainer(c))
		}
	}
	return out, nil
}

func (r *MemoryContainerRepo) UpdateLocation(id, location, description, user string) (bool, error) {
	r.mu.Lock()
	var found *models.Container
	for _, c := range r.rows {
		if c.ID == id {
			c.Location = location
			c.UpdatedAt = time.Now().UTC()
			found = c
			break
		}
	}
	r.mu.Unlock()
	if found == nil {
		return false, nil
	}

	if description == "" {
		description = "Ubicación actualizada: " + location
	}
	_, err := r.AddTrackingEvent(&models.ContainerTracking{
		ContainerID: id,
		EventDate:   time.Now().UTC().Format(time.RFC3339),
		Location:    location,
		Description: description,
		User:        user,
	})
	return true, err
}

func (r *MemoryContainerRepo) UpdateTemperature(id string, temperature float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.ID == id {
			t := temperature
			c.CurrentTemp = &t
			c.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryContainerRepo) Deliver(id, deliveryDate string) (bool, error) {
	if deliveryDate == "" {
		deliveryDate = today()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.ID == id {
			c.Status = models.ContainerDelivered
			d := deliveryDate
			c.ActDelivery = &d
			c.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryContainerRepo) AddTrackingEvent(event *models.ContainerTracking) (*models.ContainerTracking, error) {
	ev := *event
	ev.ID = uuid.NewString()
	ev.CreatedAt = time.Now().UTC()
	if ev.EventDate == "" {
		ev.EventDate = ev.CreatedAt.Format(time.RFC3339)
	}

	r.mu.Lock()
	r.events = append([]*models.ContainerTracking{&ev}, r.events...)
	r.mu.Unlock()
	return &ev, nil
}

func (r *MemoryContainerRepo) GetTracking(containerID string) ([]*models.ContainerTracking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.ContainerTracking
	for _, ev := range r.events {
		if strings.EqualFold(ev.ContainerID, containerID) {
			out = append(out, ev)
		}
	}
	return out, nil
}
