package property

import (
	"encoding/json"
	"fmt"

	"github.com/yourorg/property-insight-api/zillow"
)

const (
	NA                 = "N/A"
	defaultCountry     = "USA"
	defaultDescription = "No description found."
	zillowBaseURL      = "https://www.zillow.com"
)

// FromRecord maps a raw lookup record onto SimplifiedProperty. Missing keys never
// fail the mapping; each field falls back to its own default.
func FromRecord(raw zillow.RawProperty) SimplifiedProperty {
	city := field(raw, "city", NA)
	state := field(raw, "state", NA)
	zip := field(raw, "zipcode", NA)

	return SimplifiedProperty{
		Address:      Text(fmt.Sprintf("%s, %s, %s %s", field(raw, "streetAddress", NA), city, state, zip)),
		City:         city,
		State:        state,
		Zipcode:      zip,
		Country:      field(raw, "country", defaultCountry),
		Size:         Text(fmt.Sprintf("%s sqft", field(raw, "livingArea", NA))),
		Bedrooms:     field(raw, "bedrooms", NA),
		Bathrooms:    field(raw, "bathrooms", NA),
		YearBuilt:    field(raw, "yearBuilt", NA),
		HomeType:     field(raw, "homeType", NA),
		Price:        Text("$" + field(raw, "price", NA)),
		PricePerSqft: Text("$" + field(raw, "pricePerSquareFoot", NA)),
		LotSize:      field(raw, "lotSize", NA),
		Description:  field(raw, "description", defaultDescription),
		Schools:      mapSchools(raw["schools"]),
		ImageURL:     field(raw, "imgSrc", ""),
		ZillowURL:    Text(zillowBaseURL + field(raw, "url", "")),
	}
}

func mapSchools(b json.RawMessage) []School {
	entries := schoolObjects(b)
	out := make([]School, 0, len(entries))
	for _, s := range entries {
		out = append(out, School{
			Name:     field(s, "name", NA),
			Distance: Text(fmt.Sprintf("%s miles", field(s, "distance", NA))),
			Rating:   field(s, "rating", NA),
			Grades:   field(s, "grades", NA),
		})
	}
	return out
}

// DecodeSchools reads a client-supplied schools value without defaults.
// It is as lenient as FromRecord: a non-array yields an empty list and
// non-object entries are skipped.
func DecodeSchools(b json.RawMessage) []School {
	entries := schoolObjects(b)
	out := make([]School, 0, len(entries))
	for _, s := range entries {
		out = append(out, School{
			Name:     field(s, "name", ""),
			Distance: field(s, "distance", ""),
			Rating:   field(s, "rating", ""),
			Grades:   field(s, "grades", ""),
		})
	}
	return out
}

// schoolObjects returns the object entries of a schools array, in order.
func schoolObjects(b json.RawMessage) []map[string]json.RawMessage {
	if isNull(b) {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil
	}
	out := make([]map[string]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		var s map[string]json.RawMessage
		if err := json.Unmarshal(e, &s); err != nil || s == nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// field reads key as Text. Absent, null or undecodable values yield def;
// a present empty string is kept as is.
func field(raw map[string]json.RawMessage, key, def string) Text {
	b, ok := raw[key]
	if !ok || isNull(b) {
		return Text(def)
	}
	var t Text
	if err := json.Unmarshal(b, &t); err != nil {
		return Text(def)
	}
	return t
}

func isNull(b json.RawMessage) bool {
	return len(b) == 0 || string(b) == "null"
}
