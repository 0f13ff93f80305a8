package api

import (
	"net/url"
	"strings"
)

// DefaultRedirect is used when a redirect target is missing or unsafe.
const DefaultRedirect = "/"

// SafeRedirect returns to when it is a path on this site, and fallback
// otherwise. Protocol-relative targets ("//evil.com", "/\evil.com"),
// backslashes and control characters are rejected.
func SafeRedirect(to, fallback string) string {
	if fallback == "" {
		fallback = DefaultRedirect
	}
	if to == "" || !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") {
		return fallback
	}
	if strings.ContainsRune(to, '\\') || strings.IndexFunc(to, isControl) >= 0 {
		return fallback
	}
	u, err := url.Parse(to)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return to
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
