// Package constants centralizes defaults shared across the CLI.
//
// Timeouts, the default TLS port and the third-party endpoint URLs live here
// so cmd/ and internal/ can reference them without import cycles. Every value
// can be overridden through configuration.
package constants
