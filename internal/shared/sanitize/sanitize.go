package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy strips all HTML. Report and completion text is displayed as plain
// text, never rendered as markup.
var policy = bluemonday.StrictPolicy()

// Text removes any HTML from user-supplied free text and trims the result.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
