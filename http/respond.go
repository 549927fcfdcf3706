package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const (
	msgAddressRequired      = "Address is required"
	msgPropertyNotFound     = "Could not fetch property details. Try another address."
	msgPropertyInfoRequired = "Property information is required"
)

func writeError(w http.ResponseWriter, req *http.Request, status int, msg string) {
	render.Status(req, status)
	render.JSON(w, req, map[string]any{"error": msg})
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
