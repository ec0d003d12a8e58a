package media

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const defaultPublicID = "uploaded_image"

// publicID is the display name without its last extension.
func publicID(name string, uniqueSuffix bool) string {
	base := strings.TrimSpace(name)
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if base == "" || base == "." || base == ".." {
		base = defaultPublicID
	}

	if uniqueSuffix {
		base += "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}

	return base
}

// secureURL upgrades a plain http URL to https.
func secureURL(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "http://"); ok {
		return "https://" + rest
	}

	return raw
}

func publicURL(baseURL, key string) string {
	return secureURL(strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(key))
}

// objectKey recovers the key of a URL built by publicURL.
func objectKey(baseURL, imageURL string) (string, bool) {
	prefix := strings.TrimRight(secureURL(baseURL), "/") + "/"
	escaped, ok := strings.CutPrefix(secureURL(imageURL), prefix)
	if !ok || escaped == "" {
		return "", false
	}

	key, err := url.PathUnescape(escaped)
	if err != nil {
		return "", false
	}

	return key, true
}
