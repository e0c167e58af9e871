package utils

import "strings"

// Slugify derives a URL-safe slug from a product or vendor name. Letters
// and digits are lower-cased, runs of anything else collapse to a single
// hyphen. The slug is derived once at creation and is not re-derived on
// later renames unless it is empty.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
