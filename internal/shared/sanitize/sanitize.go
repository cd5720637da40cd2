// Package sanitize strips markup from user supplied free text.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func strict() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// maxPasses bounds the strip/decode loop for nested entity encodings.
const maxPasses = 8

// Text removes every HTML element from s and trims surrounding space.
// Entities are decoded so plain text round trips, and decoded text is
// stripped again until it no longer changes. Input still changing after
// maxPasses is returned in escaped form.
func Text(s string) string {
	if s == "" {
		return ""
	}
	out := s
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(strict().Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	return strings.TrimSpace(strict().Sanitize(out))
}

// OptionalText sanitizes *s. Nil stays nil.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	return &v
}
