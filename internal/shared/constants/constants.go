package constants

import "time"

const (
	// DefaultTLSPort is dialed when a target carries no explicit port.
	DefaultTLSPort = "443"
	// DefaultTimeout bounds a single target analysis.
	DefaultTimeout = 10 * time.Second
	// DefaultObservatoryWait is how long the lookup source waits between
	// starting an Observatory scan and fetching its results.
	DefaultObservatoryWait = 3 * time.Second
	// MaxUpstreamBodyBytes caps how much of a third-party response we decode.
	MaxUpstreamBodyBytes = 1 << 20
)

const (
	// CTLogURL is the certificate-transparency issuances endpoint.
	CTLogURL = "https://api.certspotter.com/v1/issuances"
	// ObservatoryURL is the Mozilla TLS Observatory API base.
	ObservatoryURL = "https://tls-observatory.services.mozilla.com/api/v1"
)

const (
	// DefaultDirPerm is used for directories the CLI creates.
	DefaultDirPerm = 0o755
	// DefaultFilePerm is used for history files the CLI appends to.
	DefaultFilePerm = 0o644
)
