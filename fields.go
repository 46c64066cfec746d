package underboss

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// payloadFields converts an arbitrary payload (typed request struct or map)
// into its JSON-object form. Numbers are kept as json.Number so validators
// and query encoding never go through a lossy float round-trip.
func payloadFields(payload any) (Fields, error) {
	if payload == nil {
		return Fields{}, nil
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	var fields Fields
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("payload must encode to a JSON object: %w", err)
	}
	if fields == nil {
		fields = Fields{}
	}
	return fields, nil
}

func numberValue(v any) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	return f, err == nil
}

func integerValue(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	return i, err == nil
}
