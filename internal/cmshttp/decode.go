package cmshttp

import (
	"encoding/json"
	"fmt"
)

type documentEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type collectionEnvelope struct {
	Data []json.RawMessage `json:"data"`
}

type documentRequest struct {
	Data any `json:"data"`
}

// decodeItem unmarshals one envelope item into out. Items appear either flat
// or nested as {"id": ..., "attributes": {...}} depending on the CMS version,
// so the attributes object is unwrapped when present.
func decodeItem(raw json.RawMessage, out any) error {
	probe := struct {
		Attributes json.RawMessage `json:"attributes"`
	}{}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	payload := raw
	if len(probe.Attributes) > 0 && string(probe.Attributes) != "null" {
		payload = probe.Attributes
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}
