package utils

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"incargo/models"
	"incargo/repository"
)

var ErrCompanyNotConfigured = errors.New("company profile is not configured")

// GenerateQuotePDF renders a quote document through headless Chrome and
// returns the PDF bytes. Returns (nil, nil) when the quote does not exist.
func GenerateQuotePDF(repo *repository.PDFRepository, quoteID string) ([]byte, error) {
	company, err := repo.GetCompanyForPDF()
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotConfigured
	}

	quote, err := repo.GetQuoteForPDF(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}

	client, err := repo.GetClientForPDF(quote.ClientID)
	if err != nil {
		return nil, err
	}

	contacts := ""
	for _, p := range company.Phones {
		contacts += p.Number + " (" + p.Label + "), "
	}
	if len(contacts) > 2 {
		contacts = contacts[:len(contacts)-2]
	}

	tmpl, err := template.ParseFiles("templates/quote_template.html")
	if err != nil {
		return nil, err
	}

	data := models.QuotePDFData{
		Company:    company,
		Quote:      quote,
		Client:     client,
		Contacts:   contacts,
		Date:       quote.RequestedAt,
		ValidUntil: quote.ValidUntil,
		Total:      quote.FinalValue,
		TotalWords: AmountToCurrencyWords(quote.FinalValue),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	// Chrome renders from a file URL, so the page lands in a temp file first.
	tmpHTML := filepath.Join(os.TempDir(), "cotizacion_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, buf.Bytes(), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
