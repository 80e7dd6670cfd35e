package domain

import (
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

// Entities are built from the raw decoded JSON body merged with path params
// and the authenticated principal. Validation always runs in two stages:
// every required field is checked for presence before any type check.

// present reports whether a payload field carries a usable value. A missing
// key, nil, empty string, false or zero all count as absent.
func present(payload map[string]any, key string) bool {
	switch v := payload[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

func missingError(entity string) error {
	return &internal_errors.ValidationError{Message: entity + ".NOT_CONTAIN_NEEDED_PROPERTY"}
}

func typeError(entity string) error {
	return &internal_errors.ValidationError{Message: entity + ".NOT_MEET_DATA_TYPE_SPECIFICATION"}
}

func requirePresent(payload map[string]any, entity string, keys ...string) error {
	for _, key := range keys {
		if !present(payload, key) {
			return missingError(entity)
		}
	}
	return nil
}

func requireStrings(payload map[string]any, entity string, keys ...string) error {
	for _, key := range keys {
		if _, ok := payload[key].(string); !ok {
			return typeError(entity)
		}
	}
	return nil
}
