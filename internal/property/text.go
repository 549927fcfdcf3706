package property

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Text is a display value that accepts any JSON scalar and keeps its textual form.
// Upstream records mix "3" and 3 for the same key; both decode to "3".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	// empty/null -> empty string
	if len(b) == 0 || string(b) == "null" {
		*t = ""
		return nil
	}
	switch b[0] {
	case '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*t = Text(str)
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(v))
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return err
		}
		*t = Text(buf.String())
	default:
		// Try as number, keep textual form
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return err
		}
		*t = Text(num.String())
	}
	return nil
}

// Or returns def when t is empty.
func (t Text) Or(def string) string {
	if t == "" {
		return def
	}
	return string(t)
}

func (t Text) String() string { return string(t) }
