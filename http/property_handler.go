package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/yourorg/property-insight-api/internal/canon"
	"github.com/yourorg/property-insight-api/internal/property"
)

type Normalizer interface {
	Normalize(ctx context.Context, address string) (property.SimplifiedProperty, error)
}

type PropertyDeps struct {
	Normalizer Normalizer
	Logger     *zap.Logger
}

type FetchPropertyRequest struct {
	Address string `json:"address"`
}

type FetchPropertyResponse struct {
	Address string                      `json:"address"`
	Details property.SimplifiedProperty `json:"details"`
}

func RegisterProperty(r chi.Router, d PropertyDeps) {
	log := orNop(d.Logger)

	r.Post("/fetch-property", func(w http.ResponseWriter, req *http.Request) {
		var body FetchPropertyRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			log.Debug("fetch-property: unreadable body", zap.Error(err))
			writeError(w, req, http.StatusBadRequest, msgAddressRequired)
			return
		}
		address := canon.Line(body.Address)
		if address == "" {
			writeError(w, req, http.StatusBadRequest, msgAddressRequired)
			return
		}

		details, err := d.Normalizer.Normalize(req.Context(), address)
		if err != nil {
			if !errors.Is(err, property.ErrNotFound) {
				log.Error("fetch-property: unexpected normalizer error", zap.Error(err))
			}
			writeError(w, req, http.StatusNotFound, msgPropertyNotFound)
			return
		}
		render.JSON(w, req, FetchPropertyResponse{Address: body.Address, Details: details})
	})
}
