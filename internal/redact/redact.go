// Package redact strips personally identifying details from user text
// before it reaches the persistence or archive layers. Detection always
// runs on the raw text; redaction applies only at the storage edge.
package redact

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	urlPattern   = regexp.MustCompile(`https?://[^\s]+`)
)

// Scrub replaces emails, phone numbers, and URLs with fixed
// placeholders.
func Scrub(text string) string {
	out := emailPattern.ReplaceAllString(text, "[email]")
	out = urlPattern.ReplaceAllString(out, "[link]")
	out = phonePattern.ReplaceAllString(out, "[phone]")
	return out
}
