// Package sanitizer provides input normalization functions for dashboard
// configuration values.
//
// All normalization functions are total: they never return errors and never
// panic. Missing or malformed input is replaced with a documented default
// rather than rejected.
//
// Normalization includes:
//   - Quotes: Trim whitespace and one matching pair of surrounding ' or " left by shell quoting
//   - Hosts: Default to http://localhost, drop exactly one trailing slash
//   - Paths: Default to "/", guarantee a single leading slash
//   - API bases: host + optional ":port" + path
//   - Endpoints: base + "/" + suffix with exactly one separator
//   - Slices: Remove duplicates and empty values after normalization
package sanitizer
