// This file splits OpenAPI 3.0 server URLs into the Swagger 2.0
// host/basePath/schemes triple.

package converter

import (
	"net/url"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
)

// serverURL returns the url field of a server entry, defaulting to "/" when
// the entry is not a mapping or declares no url.
func serverURL(server *yaml.Node) string {
	server = document.Resolve(server)
	if server == nil || server.Kind != yaml.MappingNode {
		return "/"
	}
	if u := document.MapGet(server, "url"); u != nil {
		return document.ScalarValue(u)
	}
	return "/"
}

// splitServerURL decomposes a server URL into host, basePath, and schemes.
// Template variables stay verbatim in whichever component they appear in
// ("https://{region}.example.com/v2" keeps "{region}.example.com" as the
// host), so URLs the standard parser rejects fall back to a textual split.
// A URL without a scheme and authority lands entirely in basePath.
func splitServerURL(rawURL string) (host, basePath string, schemes []string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return splitServerURLTextual(rawURL)
	}
	if u.Scheme != "" {
		schemes = []string{u.Scheme}
	}
	host = u.Host
	if u.User != nil {
		host = u.User.String() + "@" + u.Host
	}
	// EscapedPath keeps percent-escapes intact, and RawPath holds the
	// original text whenever it differs from the canonical escaping, e.g. a
	// "/{basePath}" template.
	basePath = u.EscapedPath()
	if u.RawPath != "" {
		basePath = u.RawPath
	}
	return host, basePath, schemes
}

// splitServerURLTextual splits scheme://authority/path by hand: the authority
// is everything between "//" and the next slash, with no character
// validation. Query and fragment are discarded like the structured parse
// does.
func splitServerURLTextual(rawURL string) (host, basePath string, schemes []string) {
	rest := rawURL
	switch {
	case strings.Contains(rest, "://"):
		i := strings.Index(rest, "://")
		schemes = []string{strings.ToLower(rest[:i])}
		rest = rest[i+3:]
	case strings.HasPrefix(rest, "//"):
		rest = rest[2:]
	default:
		if i := strings.IndexAny(rest, "?#"); i >= 0 {
			rest = rest[:i]
		}
		return "", rest, nil
	}

	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		host = rest[:i]
		if rest[i] == '/' {
			basePath = rest[i:]
			if j := strings.IndexAny(basePath, "?#"); j >= 0 {
				basePath = basePath[:j]
			}
		}
	} else {
		host = rest
	}
	return host, basePath, schemes
}
