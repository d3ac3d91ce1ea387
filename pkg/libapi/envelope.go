package libapi

import (
	"encoding/json"
)

// envelopeKeys are the wrapper fields the API puts around payloads,
// depending on the endpoint.
var envelopeKeys = []string{
	"data", "borrowDetails", "recentActivities", "activities",
	"user", "book", "borrow", "reservation", "review", "payment",
}

// payload decodes T either bare or wrapped in one of envelopeKeys.
type payload[T any] struct {
	v T
}

func (p *payload[T]) UnmarshalJSON(data []byte) error {
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err == nil {
		for _, key := range envelopeKeys {
			raw, ok := wrapped[key]
			if !ok || len(raw) == 0 || (raw[0] != '{' && raw[0] != '[') {
				continue
			}
			return json.Unmarshal(raw, &p.v)
		}
	}
	return json.Unmarshal(data, &p.v)
}

func (p *payload[T]) get() T {
	return p.v
}
