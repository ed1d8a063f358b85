package repository

import "incargo/models"

type ClientRepository interface {
	GetAll() ([]*models.Client, error)
	GetByID(id string) (*models.Client, error)
	Create(data *models.CreateClient) (*models.Client, error)
	Update(data *models.UpdateClient) (*models.Client, error)
	Delete(id string) (bool, error)
	GetByType(clientType string) ([]*models.Client, error)
	GetActive() ([]*models.Client, error)
	// Search matches the term case-insensitively against company name,
	// NIT and primary contact.
	Search(term string) ([]*models.Client, error)
	UpdateBalance(id string, balance float64) (bool, error)
	// AddContractedService appends a service label if not already present.
	AddContractedService(id, serviceType string) (bool, error)
	GetWithPendingBalance() ([]*models.Client, error)
}
