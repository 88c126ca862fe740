package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"medicita/internal/domain/entity"
)

// decodeJSON rejects bodies with fields the request type does not declare
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// listFilter reads the ?q= search term
func listFilter(r *http.Request) *entity.ListFilter {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		return nil
	}
	return &entity.ListFilter{Query: q}
}
