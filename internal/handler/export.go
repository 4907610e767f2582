package handler

import (
	"fmt"
	"net/http"
	"strconv"
)

// ExportItinerary handles GET /tours/{tourID}/export, returning the full
// itinerary PDF as an attachment. A render failure is the one error class
// surfaced to the user as a blocking notification (502 with code
// "export_failed"); no partial file is ever written to the response.
func (s *Server) ExportItinerary(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	export, err := s.export.Itinerary(r.Context(), tourID)
	if err != nil {
		respondError(w, err)
		return
	}
	servePDF(w, export.Filename, export.Data)
}

// servePDF writes a fully rendered document as a download. Rendering
// happens before the first byte of the response, so an error can never
// leave a truncated file on the client.
func servePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck — client disconnects are not actionable here
}
