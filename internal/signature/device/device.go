// Package device derives a human-readable signer device descriptor from the
// User-Agent header, recorded alongside each signature for audit purposes.
package device

import (
	"fmt"
	"strings"

	"github.com/mssola/useragent"
)

const unknownDevice = "unknown device"

// Describe parses a User-Agent string into a short descriptor such as
// "Chrome 120.0 on Linux" or "Mobile Safari on iPhone". An empty or
// unparseable User-Agent yields "unknown device".
func Describe(rawUserAgent string) string {
	rawUserAgent = strings.TrimSpace(rawUserAgent)
	if rawUserAgent == "" {
		return unknownDevice
	}

	ua := useragent.New(rawUserAgent)
	name, version := ua.Browser()
	if name == "" {
		return unknownDevice
	}

	platform := ua.OS()
	if platform == "" {
		platform = ua.Platform()
	}

	switch {
	case version != "" && platform != "":
		return fmt.Sprintf("%s %s on %s", name, version, platform)
	case platform != "":
		return fmt.Sprintf("%s on %s", name, platform)
	case version != "":
		return fmt.Sprintf("%s %s", name, version)
	default:
		return name
	}
}
