package zillow

import (
	"encoding/json"
	"fmt"
)

// RawProperty is the upstream record as returned, keyed by the provider's field names
// (streetAddress, livingArea, pricePerSquareFoot, imgSrc, url, schools, ...).
type RawProperty map[string]json.RawMessage

// DecodeRecord parses a lookup body. Anything but a non-empty JSON object is rejected.
func DecodeRecord(body []byte) (RawProperty, error) {
	var raw RawProperty
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode property record: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyRecord
	}
	return raw, nil
}
