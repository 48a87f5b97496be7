package api

import (
	"bytes"
	"encoding/json"
)

// PayloadKind tags the normalized response variant.
type PayloadKind int

const (
	// KindRecord is a single JSON object.
	KindRecord PayloadKind = iota
	// KindList is a top-level JSON array, or an object wrapping an "items"
	// array.
	KindList
	// KindText is a body that did not parse as JSON. Kept verbatim so the
	// user can still see what the service said.
	KindText
)

// Payload is the gateway's normalized response. The service answers the same
// endpoint with a bare object, an object wrapping an "items" array, or a
// top-level array; callers branch on Kind instead of re-inspecting JSON
// shapes at every call site.
type Payload struct {
	Kind   PayloadKind
	Record map[string]any
	List   []any
	Text   string
}

// Records flattens the payload into a slice of JSON objects. A single record
// becomes a one-element slice; non-object list entries are skipped.
func (p Payload) Records() []map[string]any {
	switch p.Kind {
	case KindRecord:
		return []map[string]any{p.Record}
	case KindList:
		out := make([]map[string]any, 0, len(p.List))
		for _, v := range p.List {
			if rec, ok := v.(map[string]any); ok {
				out = append(out, rec)
			}
		}
		return out
	}
	return nil
}

// normalizePayload decodes a raw body into the tagged variant. Numbers are
// kept as json.Number so large ids survive verbatim. Unparseable bodies fall
// back to KindText.
func normalizePayload(raw []byte) Payload {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Payload{Kind: KindRecord, Record: map[string]any{}}
	}

	switch trimmed[0] {
	case '{':
		var rec map[string]any
		if err := decodeJSON(trimmed, &rec); err == nil {
			if items, ok := rec["items"].([]any); ok {
				return Payload{Kind: KindList, List: items, Record: rec}
			}
			return Payload{Kind: KindRecord, Record: rec}
		}
	case '[':
		var list []any
		if err := decodeJSON(trimmed, &list); err == nil {
			return Payload{Kind: KindList, List: list}
		}
	}

	return Payload{Kind: KindText, Text: string(raw)}
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
