package repository

import "incargo/models"

// VehicleRepository is the fleet persistence facade. Implementations exist
// for Postgres, MongoDB and the seeded in-memory demo store; all of them
// report not-found as a nil/false result with a nil error.
type VehicleRepository interface {
	GetAll() ([]*models.Vehicle, error)
	GetByID(id string) (*models.Vehicle, error)
	Create(data *models.CreateVehicle) (*models.Vehicle, error)
	Update(data *models.UpdateVehicle) (*models.Vehicle, error)
	Delete(id string) (bool, error)
	GetByStatus(status string) ([]*models.Vehicle, error)
	// GetNearExpiry returns vehicles whose SOAT or technical review expires
	// within the given number of days.
	GetNearExpiry(days int) ([]*models.Vehicle, error)
	UpdateLocation(id, location string) (bool, error)
	UpdateKilometers(id string, km int) (bool, error)
}
