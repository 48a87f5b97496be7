// Package models holds the client-side data types exchanged with the review
// service.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Item is a unit of work inside a project that comments and attachments are
// posted against. The service does not enforce name uniqueness, so duplicate
// names are kept as-is.
type Item struct {
	ID         string
	Name       string
	ModifiedAt string
}

// DisplayString renders the selector form "<id>: <name>".
func (i Item) DisplayString() string {
	return fmt.Sprintf("%s: %s", i.ID, i.Name)
}

// ItemFromRecord builds an Item from a decoded JSON object. The service is
// loose about numeric vs string ids; both are accepted.
func ItemFromRecord(rec map[string]any) Item {
	return Item{
		ID:         stringField(rec, "id"),
		Name:       stringField(rec, "item_nm"),
		ModifiedAt: stringField(rec, "modified"),
	}
}

func stringField(rec map[string]any, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CreateItemBody is the wire shape for creating an item.
type CreateItemBody struct {
	Name string `json:"item_nm"`
}
