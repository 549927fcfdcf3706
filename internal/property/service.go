package property

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/yourorg/property-insight-api/internal/canon"
	"github.com/yourorg/property-insight-api/internal/metrics"
	"github.com/yourorg/property-insight-api/zillow"
)

// ErrNotFound covers every failed lookup. The cause is only logged.
var ErrNotFound = errors.New("property not found")

// Lookup fetches the raw record for an address. zillow.Client and zillow.Fixture implement it.
type Lookup interface {
	Property(ctx context.Context, address string) (zillow.RawProperty, error)
}

type Normalizer struct {
	lookup Lookup
	log    *zap.Logger
}

func NewNormalizer(lookup Lookup, log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{lookup: lookup, log: log.Named("property")}
}

// Normalize looks up address once and maps the result. The only error is ErrNotFound.
func (n *Normalizer) Normalize(ctx context.Context, address string) (SimplifiedProperty, error) {
	key := canon.Key(address)

	start := time.Now()
	raw, err := n.lookup.Property(ctx, address)
	metrics.ObserveUpstream("property", start)
	if err == nil && len(raw) == 0 {
		err = zillow.ErrEmptyRecord
	}
	if err != nil {
		n.log.Warn("property lookup failed",
			zap.String("property_key", key),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		metrics.PropertyLookups.WithLabelValues("not_found").Inc()
		return SimplifiedProperty{}, ErrNotFound
	}

	metrics.PropertyLookups.WithLabelValues("found").Inc()
	n.log.Debug("property lookup ok", zap.String("property_key", key), zap.Int("raw_fields", len(raw)))
	return FromRecord(raw), nil
}
