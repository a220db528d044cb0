package utils

import (
	"fmt"
	"net/url"
)

// ValidateURL checks that the given text parses as an absolute http(s) URL.
// The wizard currently records URLs verbatim; re-asking on bad input is the
// dialog runtime's job. TODO: reject obviously broken URLs before the
// confirmation step once the retry UX is settled.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("keine gültige URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL muss mit http:// oder https:// beginnen")
	}
	if u.Host == "" {
		return fmt.Errorf("URL ohne Host")
	}
	return nil
}
