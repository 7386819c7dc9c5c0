package schema

import "encoding/json"

// EntryType selects which value field of a DictionaryEntry is populated.
type EntryType string

const (
	EntryText     EntryType = "text"
	EntryRichText EntryType = "richtext"
	EntryJSON     EntryType = "json"
)

// DictionaryEntry is a reusable text fragment keyed by a dotted namespace
// string (e.g. "productShowcase.filter.all"). At most one of the three value
// fields is populated, selected by Type.
type DictionaryEntry struct {
	Key           string         `json:"key"`
	Type          EntryType      `json:"type"`
	TextValue     string         `json:"textValue,omitempty"`
	RichTextValue string         `json:"richTextValue,omitempty"`
	JSONValue     map[string]any `json:"jsonValue,omitempty"`
}

// Flatten resolves the entry to the single string used by text lookups:
// json entries serialize their structured value, richtext entries use the
// rich-text field, everything else uses the plain text field. Absent values
// flatten to the empty string.
func (e DictionaryEntry) Flatten() string {
	switch e.Type {
	case EntryJSON:
		if e.JSONValue == nil {
			return ""
		}
		encoded, err := json.Marshal(e.JSONValue)
		if err != nil {
			return ""
		}
		return string(encoded)
	case EntryRichText:
		return e.RichTextValue
	default:
		return e.TextValue
	}
}
