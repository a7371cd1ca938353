// Package maplink turns a free-text delivery location into an external map
// search URL. Pure string templating, no network calls.
package maplink

import "net/url"

const searchBase = "https://www.google.com/maps/search/?api=1&query="

// ForLocation returns a map search URL for the given location string, or
// an empty string when there is no location to link.
func ForLocation(location string) string {
	if location == "" {
		return ""
	}
	return searchBase + url.QueryEscape(location)
}
