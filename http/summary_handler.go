package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/yourorg/property-insight-api/internal/property"
	"github.com/yourorg/property-insight-api/internal/summary"
)

type SummaryGenerator interface {
	Generate(ctx context.Context, p property.SimplifiedProperty) (string, error)
}

type SummaryDeps struct {
	Generator SummaryGenerator
	Logger    *zap.Logger
}

type GenerateSummaryRequest struct {
	PropertyInfo json.RawMessage `json:"property_info"`
}

type GenerateSummaryResponse struct {
	Summary string `json:"summary"`
}

func RegisterSummary(r chi.Router, d SummaryDeps) {
	log := orNop(d.Logger)

	r.Post("/generate-summary", func(w http.ResponseWriter, req *http.Request) {
		var body GenerateSummaryRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			log.Debug("generate-summary: unreadable body", zap.Error(err))
			writeError(w, req, http.StatusBadRequest, msgPropertyInfoRequired)
			return
		}
		info, ok := decodePropertyInfo(body.PropertyInfo)
		if !ok {
			writeError(w, req, http.StatusBadRequest, msgPropertyInfoRequired)
			return
		}

		text, err := d.Generator.Generate(req.Context(), info)
		if err != nil {
			// not an HTTP failure: the client gets a fixed message in place of the summary
			text = summary.Message(err)
		}
		render.JSON(w, req, GenerateSummaryResponse{Summary: text})
	})
}

// propertyInfo shadows Schools so a malformed list degrades like it does in FromRecord.
type propertyInfo struct {
	property.SimplifiedProperty
	Schools json.RawMessage `json:"schools"`
}

// decodePropertyInfo accepts only a non-empty JSON object.
func decodePropertyInfo(raw json.RawMessage) (property.SimplifiedProperty, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return property.SimplifiedProperty{}, false
	}
	var info propertyInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return property.SimplifiedProperty{}, false
	}
	p := info.SimplifiedProperty
	p.Schools = property.DecodeSchools(info.Schools)
	return p, true
}
