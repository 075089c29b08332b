package response

import (
	"encoding/json"
	"net/http"

	"github.com/glowup/research-backend/internal/entity"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		// Headers are already sent; nothing useful can be done on failure.
		_ = enc.Encode(data)
	}
}

// Error writes a {success:false, error} response
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, entity.ErrorResponse{Success: false, Error: message})
}

// ValidationError writes a 400 response listing every violation.
func ValidationError(w http.ResponseWriter, message string, violations []string) {
	JSON(w, http.StatusBadRequest, entity.ErrorResponse{
		Success:          false,
		Error:            message,
		ValidationErrors: violations,
	})
}

// Success writes a success response
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Binary writes a downloadable file.
func Binary(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
