package repository

import (
	"incargo/models"
)

// PDFRepository bundles the lookups the quote document renderer needs.
type PDFRepository struct {
	QuoteRepo   QuoteRepository
	ClientRepo  ClientRepository
	CompanyRepo CompanyRepository
}

func NewPDFRepository(quoteRepo QuoteRepository, clientRepo ClientRepository, companyRepo CompanyRepository) *PDFRepository {
	return &PDFRepository{
		QuoteRepo:   quoteRepo,
		ClientRepo:  clientRepo,
		CompanyRepo: companyRepo,
	}
}

func (r *PDFRepository) GetQuoteForPDF(id string) (*models.Quote, error) {
	return r.QuoteRepo.GetByID(id)
}

func (r *PDFRepository) GetClientForPDF(clientID string) (*models.Client, error) {
	return r.ClientRepo.GetByID(clientID)
}

// GetCompanyForPDF fetches the letterhead row.
func (r *PDFRepository) GetCompanyForPDF() (*models.CompanyProfile, error) {
	return r.CompanyRepo.Get()
}
