package sanitizer

var (
	hostPipeline = Pipeline{
		StripQuotes,
		trimOneTrailingSlash,
		defaultTo(DefaultHost),
	}

	pathPipeline = Pipeline{
		StripQuotes,
		ensureLeadingSlash,
	}
)

// NormalizeHost never returns an empty string or a value ending in "/".
// Only a single trailing slash is removed: "http://a//" becomes "http://a/".
func NormalizeHost(host string) string {
	return hostPipeline.Apply(host)
}

func NormalizePath(path string) string {
	return pathPipeline.Apply(path)
}

// BuildAPIBase joins host, optional port and path into an absolute base URL.
// An empty path is treated as "/".
func BuildAPIBase(host, port, path string) string {
	base := NormalizeHost(host)
	if p := StripQuotes(port); p != "" {
		base += ":" + p
	}
	return base + NormalizePath(path)
}

// BuildEndpoint appends suffix to base with exactly one "/" between them,
// relying on NormalizeHost to drop the trailing slash of base.
func BuildEndpoint(base, suffix string) string {
	s := StripQuotes(suffix)
	if len(s) == 0 || s[0] != '/' {
		s = "/" + s
	}
	return NormalizeHost(base) + s
}
