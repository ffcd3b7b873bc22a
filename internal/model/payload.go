// Package model defines the forum's entities and the checks they run on the
// raw payloads they are built from.
//
// Entities validate at construction and fail fast with an
// *apperror.DomainError. A value returned without error is always valid.
package model

import (
	"github.com/sakif/forum-api/internal/apperror"
)

// Payload is a decoded JSON object as it arrived from the client. Keeping it
// untyped lets entities tell a missing field from a field of the wrong type.
type Payload map[string]any

// requireStrings reads keys from p as strings. Every key is checked for presence
// before any key is checked for type, so a payload that is both incomplete and
// mistyped reports the missing property.
func (p Payload) requireStrings(entity apperror.Entity, keys ...string) ([]string, error) {
	for _, k := range keys {
		if isEmpty(p[k]) {
			return nil, apperror.Domain(entity, apperror.ReasonMissingProperty)
		}
	}

	out := make([]string, len(keys))
	for i, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, apperror.Domain(entity, apperror.ReasonInvalidType)
		}
		out[i] = s
	}
	return out, nil
}

// isEmpty reports whether v counts as "not provided": absent, null, empty
// string, false or zero.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	default:
		return false
	}
}
