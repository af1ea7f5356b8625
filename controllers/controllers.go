package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/mindevis/stitch-cafe/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Status *StatusController
}

// NewControllers creates and initializes all controller instances
func NewControllers(srvs *services.Services) *Controllers {
	return &Controllers{
		Status: NewStatusController(srvs.Stats),
	}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}
