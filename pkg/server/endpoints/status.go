package endpoints

import (
	"net/http"

	"github.com/inkwell-vtt/inkwell/pkg/server"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// StatusResponse is the response from the status endpoint
type StatusResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// RegisterStatusEndpoints registers the unauthenticated status endpoint
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/status", handleStatus).Methods("GET")
	s.Router.HandleFunc("/", handleStatus).Methods("GET")
}

func handleStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, StatusResponse{
		Service: "inkwell",
		Version: Version,
	})
}
