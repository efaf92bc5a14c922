package capture

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Platform selects how photo paths are turned into URIs.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformDesktop Platform = "desktop"
)

// NormalizePhotoURI converts a file-system path returned by the camera into the
// URI form the platform expects.
//
//	android: "file://" prefix, unless the path already carries a scheme
//	ios:     path unchanged
//	desktop: absolute file:// URL
func NormalizePhotoURI(platform Platform, path string) string {
	if path == "" || hasScheme(path) {
		return path
	}

	switch platform {
	case PlatformAndroid:
		return "file://" + path
	case PlatformIOS:
		return path
	default:
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		p := filepath.ToSlash(abs)
		if !strings.HasPrefix(p, "/") {
			p = "/" + p // Windows drive paths
		}
		u := url.URL{Scheme: "file", Path: p}
		return u.String()
	}
}

func hasScheme(path string) bool {
	i := strings.Index(path, "://")
	if i <= 0 {
		return false
	}
	for _, r := range path[:i] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}
