package quotes

import "incargo/models"

// AllowTransition is the directed graph of legal quote status changes.
// Approved, rejected and expired are terminal.
var AllowTransition = map[string][]string{
	models.QuoteDraft:    {models.QuoteSent, models.QuoteRejected, models.QuoteExpired},
	models.QuoteSent:     {models.QuoteApproved, models.QuoteRejected, models.QuoteExpired},
	models.QuoteApproved: {},
	models.QuoteRejected: {},
	models.QuoteExpired:  {},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to string) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
