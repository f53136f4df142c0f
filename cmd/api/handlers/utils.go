package handlers

import (
	"encoding/json"
	"net/http"
)

// statusMessage maps status and message into JSON formatted string
func statusMessage(status string, message string) map[string]interface{} {
	return map[string]interface{}{"status": status, "message": message}
}

// respond encodes a JSON response to a http request
func respond(w http.ResponseWriter, data map[string]interface{}) {
	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// respondWithStatus encodes a JSON response to a http request and modifies response status code
func respondWithStatus(w http.ResponseWriter, statusCode int, data map[string]interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
