package validation

import (
	"encoding/json"
	"fmt"
)

// ValidateText checks that a text field fits within maxBytes.
// Empty text is valid: every analysis accepts it.
func ValidateText(field, text string, maxBytes int) (bool, string) {
	if len(text) > maxBytes {
		return false, fmt.Sprintf("%s exceeds maximum size of %d bytes", field, maxBytes)
	}
	return true, ""
}

// ValidateMaxSentences checks the requested summary length against limit.
// Zero and negative values are allowed and produce an empty summary.
func ValidateMaxSentences(n, limit int) (bool, string) {
	if n > limit {
		return false, fmt.Sprintf("max_sentences must be at most %d", limit)
	}
	return true, ""
}

// ValidateRequired checks that each named field is present in the JSON
// object body and is not null. An empty string counts as present.
func ValidateRequired(body []byte, fields ...string) (bool, string) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return false, "invalid request body"
	}
	for _, field := range fields {
		raw, ok := obj[field]
		if !ok || string(raw) == "null" {
			return false, fmt.Sprintf("%s is required", field)
		}
	}
	return true, ""
}
