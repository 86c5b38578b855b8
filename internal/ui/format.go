package ui

import (
	"bytes"
	"encoding/json"
)

// prettyJSON indents a raw JSON payload for display. Payloads that are not
// valid JSON (the transport normally guarantees they are) come back verbatim
// so the user still sees something.
func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
