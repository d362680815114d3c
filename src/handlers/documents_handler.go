package handlers

import (
	"log"
	"net/http"

	"wonderpay-server/src/services"
)

// ScanDocument accepts one uploaded bill (PDF/PNG/JPEG, at most 10 MB)
// and runs it through vendor OCR, returning the extracted payable
// draft. The response carries the failed-attempt count so the dashboard
// can show retry progress after the fact.
func ScanDocument(ocr *services.OCRService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			log.Printf("ERROR: Failed to read uploaded document: %v", err)
			http.Error(w, "missing file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		mimeType := header.Header.Get("Content-Type")
		payable, err := ocr.ProcessDocument(r.Context(), header.Filename, mimeType, header.Size, file)
		if err != nil {
			log.Printf("ERROR: Failed to scan document %q after %d failed attempts: %v", header.Filename, ocr.Attempts(), err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Scanned document %q into payable %s", header.Filename, payable.ID)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"payable":  payable,
			"attempts": ocr.Attempts(),
		})
	}
}
