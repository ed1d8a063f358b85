package repository

import "incargo/models"

// CompanyRepository stores the single letterhead row used on quote PDFs.
type CompanyRepository interface {
	Save(profile *models.CompanyProfile) error
	Get() (*models.CompanyProfile, error)
}
