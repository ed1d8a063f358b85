package models

// QuotePDFData is the view model handed to the quote document template.
type QuotePDFData struct {
	Company    *CompanyProfile
	Quote      *Quote
	Client     *Client
	Contacts   string
	Date       string
	ValidUntil string
	Total      float64
	TotalWords string
}
