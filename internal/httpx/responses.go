package httpx

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body shape shared by delete success and every
// error response. Message is a string, or a []string for validation
// failures.
type MessageResponse struct {
	Message any `json:"message"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONMessage writes a {"message": ...} body with the given status code.
func JSONMessage(w http.ResponseWriter, statusCode int, message any) {
	JSON(w, statusCode, MessageResponse{Message: message})
}
