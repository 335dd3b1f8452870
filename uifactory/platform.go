package uifactory

import (
	"runtime"
	"strconv"
	"strings"
)

// Platform names a widget family.
type Platform string

const (
	Windows Platform = "Windows"
	MacOS   Platform = "MacOS"
)

// String implements fmt.Stringer.
func (p Platform) String() string { return string(p) }

// UnsupportedPlatformError is returned when no widget family exists for a platform.
type UnsupportedPlatformError struct{ Platform string }

// Error implements the error interface.
func (e UnsupportedPlatformError) Error() string {
	// Example: uifactory: unsupported platform "linux"
	return "uifactory: unsupported platform " + strconv.Quote(e.Platform)
}

// ParsePlatform maps a user-supplied name to a Platform.
//
// Matching is case-insensitive. "mac" and "darwin" are accepted for MacOS.
// "auto" resolves the platform this binary runs on.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows":
		return Windows, nil
	case "macos", "mac", "darwin":
		return MacOS, nil
	case "auto":
		return platformForGOOS(runtime.GOOS)
	default:
		return "", UnsupportedPlatformError{Platform: name}
	}
}

func platformForGOOS(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "darwin":
		return MacOS, nil
	default:
		return "", UnsupportedPlatformError{Platform: goos}
	}
}
