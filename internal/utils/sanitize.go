package utils

import "github.com/microcosm-cc/bluemonday"

// HTMLSanitizer strips all markup from user-submitted text before it is
// persisted. Plain text passes through unchanged.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *HTMLSanitizer {
	return &HTMLSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *HTMLSanitizer) Sanitize(text string) string {
	return s.policy.Sanitize(text)
}
