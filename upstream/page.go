// upstream/page.go
package upstream

import (
	"bytes"
	"encoding/json"
)

// Page is the normalized list result. The backend answers list calls with
// either a bare JSON array or an {items,total} envelope; callers always
// see the envelope form. Items stay raw because field naming varies per
// deployment and normalization is the view-model layer's job.
type Page struct {
	Items []json.RawMessage `json:"items"`
	Total int               `json:"total"`
}

func decodePage(raw []byte) (Page, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Page{Items: []json.RawMessage{}}, nil
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Page{}, &Error{Message: "Malformed response body"}
		}
		return Page{Items: items, Total: len(items)}, nil
	}

	var env struct {
		Items []json.RawMessage `json:"items"`
		Total *int              `json:"total"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Page{}, &Error{Message: "Malformed response body"}
	}
	if env.Items == nil {
		env.Items = []json.RawMessage{}
	}
	total := len(env.Items)
	if env.Total != nil {
		total = *env.Total
	}
	return Page{Items: env.Items, Total: total}, nil
}
