// Package sanitize strips markup from user-supplied text.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from input and trims surrounding whitespace.
// Captions and comment bodies are stored as plain text.
func Text(input string) string {
	return strings.TrimSpace(policy.Sanitize(input))
}
