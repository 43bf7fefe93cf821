// Package config loads runtime settings for the SiteBloom client.
//
// Values are resolved in four stages, later stages overriding earlier ones:
//
//  1. Built-in defaults (LoadDefaults).
//  2. A JSON config file given via -c or -config.
//  3. Environment variables (API_URL, REQUEST_TIMEOUT, DATABASE_DSN).
//  4. Command-line flags (-a, -t, -d).
//
// The JSON loader uses timex.Duration for the request timeout, so values can
// be either strings like "10s" or integer nanoseconds. Flag parsing filters
// os.Args to only the flags this package owns, so it can coexist with flags
// defined by other packages.
package config
