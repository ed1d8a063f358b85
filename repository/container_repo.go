package repository

import "incargo/models"

type ContainerRepository interface {
	GetAll() ([]*models.Container, error)
	GetByID(id string) (*models.Container, error)
	GetByNumber(number string) (*models.Container, error)
	Create(data *models.CreateContainer) (*models.Container, error)
	Update(data *models.UpdateContainer) (*models.Container, error)
	Delete(id string) (bool, error)
	GetByStatus(status string) ([]*models.Container, error)
	GetByClient(clientID string) ([]*models.Container, error)
	GetByType(containerType string) ([]*models.Container, error)
	GetReefer() ([]*models.Container, error)
	// GetNearDelivery returns undelivered containers whose estimated
	// delivery falls within the given number of days.
	GetNearDelivery(days int) ([]*models.Container, error)
	// GetOverdue returns undelivered containers past their estimated date.
	GetOverdue() ([]*models.Container, error)
	// Search matches container number, BL number, carrier and goods.
	Search(term string) ([]*models.Container, error)
	// UpdateLocation moves the container and records a tracking event.
	UpdateLocation(id, location, description, user string) (bool, error)
	UpdateTemperature(id string, temperature float64) (bool, error)
	// Deliver sets estado to entregado and stamps fecha_entrega_real.
	Deliver(id, deliveryDate string) (bool, error)
	AddTrackingEvent(event *models.ContainerTracking) (*models.ContainerTracking, error)
	GetTracking(containerID string) ([]*models.ContainerTracking, error)
}
