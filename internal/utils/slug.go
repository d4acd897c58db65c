package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// PublicURLSlug builds the public URL slug for a landing page:
// lowercase product name, non-alphanumerics collapsed to single hyphens,
// trimmed, suffixed with the last 4 digits of the current timestamp.
func PublicURLSlug(productName string, now time.Time) string {
	base := strings.ToLower(productName)
	base = nonAlnum.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	ms := fmt.Sprintf("%d", now.UnixMilli())
	suffix := ms[len(ms)-4:]

	if base == "" {
		return "landing-" + suffix
	}
	return base + "-" + suffix
}
