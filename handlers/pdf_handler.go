package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"incargo/repository"
	"incargo/utils"
)

type PDFHandler struct {
	Repo *repository.PDFRepository
}

// QuotePDF renders the quote document and streams it back. When object
// storage is configured the file is also archived and the quote keeps a
// pointer to the stored copy.
func (h *PDFHandler) QuotePDF(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		badRequest(w, "id is required")
		return
	}

	pdfBytes, err := utils.GenerateQuotePDF(h.Repo, id)
	if err != nil {
		if errors.Is(err, utils.ErrCompanyNotConfigured) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		serverError(w, err)
		return
	}
	if pdfBytes == nil {
		notFound(w, "quote not found")
		return
	}

	filename := fmt.Sprintf("cotizacion_%s.pdf", id)
	if utils.R2Configured() {
		fileURL, upErr := utils.UploadToR2(pdfBytes, filename)
		if upErr != nil {
			zap.L().Error("quote pdf upload failed", zap.String("quote_id", id), zap.Error(upErr))
		} else if dbErr := h.Repo.QuoteRepo.UpdatePDFInfo(id, fileURL, time.Now().UTC()); dbErr != nil {
			zap.L().Error("quote pdf info update failed", zap.String("quote_id", id), zap.Error(dbErr))
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
