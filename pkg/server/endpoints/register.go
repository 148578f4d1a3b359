package endpoints

import (
	"github.com/inkwell-vtt/inkwell/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) error {
	if err := RegisterFolderEndpoints(srv); err != nil {
		return err
	}
	RegisterStatusEndpoints(srv)
	return nil
}
