package canon

import (
	"regexp"
	"strings"
)

var rePunct = regexp.MustCompile(`[^A-Za-z0-9\s]`)

// Basic USPS-style suffix normalization
var suffixes = map[string]string{
	"STREET":    "ST",
	"ROAD":      "RD",
	"AVENUE":    "AVE",
	"BOULEVARD": "BLVD",
	"DRIVE":     "DR",
	"LANE":      "LN",
	"COURT":     "CT",
	"CIRCLE":    "CIR",
	"TERRACE":   "TER",
	"PLACE":     "PL",
	"PARKWAY":   "PKWY",
	"HIGHWAY":   "HWY",
}

// Line trims a free-form address and collapses runs of whitespace to one space.
// The result is what gets sent upstream.
func Line(s string) string {
	return collapseSpaces(s)
}

// Key derives a stable identity for a free-form address, used to correlate log
// lines for the same property. It is never sent upstream.
func Key(s string) string {
	up := rePunct.ReplaceAllString(strings.ToUpper(s), " ")
	toks := strings.Fields(up)
	for i, t := range toks {
		if abbr, ok := suffixes[t]; ok {
			toks[i] = abbr
		}
	}
	return strings.ToLower(strings.Join(toks, " "))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
