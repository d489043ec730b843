package lca

import "github.com/rs/zerolog"

// logger is the package-level logger for data-quality warnings emitted while
// parsing embedded tables and correcting malformed factors. It defaults to a
// no-op logger so library consumers opt in explicitly.
var logger = zerolog.Nop()

// SetLogger injects a logger for package-level diagnostics. Call once during
// process initialization, before the first calculation.
func SetLogger(l zerolog.Logger) {
	logger = l
}
