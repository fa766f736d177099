package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Email checks that the input parses as an address and that the address
// equals the input (guards against "Name <a@b.c>" style inputs).
func Email(email string) error {
	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("failed to parse email: %w", err)
	}
	if parsed.Address != email {
		return fmt.Errorf("failed to get an exact email address match")
	}
	return nil
}

// Slug checks that the input is a lowercase kebab-case identifier.
func Slug(slug string) error {
	if slug == "" {
		return fmt.Errorf("failed to get a non-empty slug")
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("failed to match slug pattern: received[%s]", slug)
	}
	return nil
}

// Url checks that the input is an absolute http(s) URL.
func Url(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("failed to get a http(s) scheme: received[%s]", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("failed to get a host")
	}
	return nil
}

// Slugify converts a display name into a url-safe slug.
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	replaced := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == 'á', r == 'à', r == 'ä':
			return 'a'
		case r == 'é', r == 'è', r == 'ë':
			return 'e'
		case r == 'í', r == 'ì', r == 'ï':
			return 'i'
		case r == 'ó', r == 'ò', r == 'ö':
			return 'o'
		case r == 'ú', r == 'ù', r == 'ü':
			return 'u'
		case r == 'ñ':
			return 'n'
		default:
			return '-'
		}
	}, lowered)
	collapsed := regexp.MustCompile(`-+`).ReplaceAllString(replaced, "-")
	return strings.Trim(collapsed, "-")
}
