package repository

import "incargo/models"

type ServiceRepository interface {
	GetAll() ([]*models.Service, error)
	GetByID(id string) (*models.Service, error)
	Create(data *models.CreateService) (*models.Service, error)
	Update(data *models.UpdateService) (*models.Service, error)
	Delete(id string) (bool, error)
	GetByStatus(status string) ([]*models.Service, error)
	GetByClient(clientID string) ([]*models.Service, error)
	GetByVehicle(vehicleID string) ([]*models.Service, error)
	// GetByDateRange filters on fecha_inicio, bounds inclusive.
	GetByDateRange(startDate, endDate string) ([]*models.Service, error)
	// GetActive returns services in pendiente or en_proceso.
	GetActive() ([]*models.Service, error)
	// GetOverdue returns active services whose estimated date already passed.
	GetOverdue() ([]*models.Service, error)
	// UpdateStatus stamps fecha_completado when the new status is completado.
	UpdateStatus(id, status string) (bool, error)
	// Cancel sets estado to cancelado; a non-empty reason replaces observaciones.
	Cancel(id, reason string) (bool, error)
	AssignVehicle(serviceID, vehicleID string) (bool, error)
	// RevenueByPeriod sums valor_total of completed services started in range.
	RevenueByPeriod(startDate, endDate string) (float64, error)
}
