package checker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

// Report status values.
const (
	StatusError      = "ERROR"
	StatusInProgress = "IN_PROGRESS"
	StatusReady      = "READY"
	StatusUnknown    = "UNKNOWN"
)

// CertInfo describes the leaf certificate of a target.
type CertInfo struct {
	Subject            string `json:"subject" yaml:"subject"`
	Issuer             string `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	ValidFrom          string `json:"validFrom,omitempty" yaml:"validFrom,omitempty"`
	ValidTo            string `json:"validTo,omitempty" yaml:"validTo,omitempty"`
	SignatureAlgorithm string `json:"signatureAlgorithm,omitempty" yaml:"signatureAlgorithm,omitempty"`
	KeySize            int    `json:"keySize,omitempty" yaml:"keySize,omitempty"`
}

// Observation is what a Source saw for a host, as raw strings. Empty strings
// mean the source could not tell.
type Observation struct {
	Host        string
	Source      string
	Protocols   []string
	Cipher      string
	KeyExchange string
	Cert        CertInfo
}

// Report is the analysis result for one target.
type Report struct {
	ID           string           `json:"id" yaml:"id"`
	Host         string           `json:"host" yaml:"host"`
	Source       string           `json:"source" yaml:"source"`
	Status       string           `json:"status" yaml:"status"`
	CheckedAt    time.Time        `json:"checkedAt" yaml:"checkedAt"`
	Protocols    []string         `json:"protocols" yaml:"protocols"`
	Cipher       string           `json:"cipher,omitempty" yaml:"cipher,omitempty"`
	KeyExchange  string           `json:"keyExchange,omitempty" yaml:"keyExchange,omitempty"`
	CertInfo     CertInfo         `json:"certInfo" yaml:"certInfo"`
	PQStatus     pqc.Readiness    `json:"pqStatus" yaml:"pqStatus"`
	Cryptography pqc.Cryptography `json:"cryptography" yaml:"cryptography"`
	Error        string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the analysis could not observe the target.
func (r *Report) Failed() bool {
	return r.Status == StatusError
}

// Source produces observations for a target.
type Source interface {
	// Observe gathers the raw algorithm names for a single target.
	Observe(ctx context.Context, target string) (*Observation, error)

	// Name returns the source identifier (e.g., "probe", "lookup").
	Name() string
}

// Source names accepted by NewSource.
const (
	SourceProbe  = "probe"
	SourceLookup = "lookup"
)

// SourceNames lists the supported sources.
func SourceNames() []string {
	return []string{SourceProbe, SourceLookup}
}

// SourceConfig carries the options shared by all sources.
type SourceConfig struct {
	Timeout         time.Duration
	CTLogURL        string
	ObservatoryURL  string
	ObservatoryWait time.Duration
}

// NewSource builds the named source.
func NewSource(name string, cfg SourceConfig) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SourceProbe:
		return &ProbeSource{Timeout: cfg.Timeout}, nil
	case SourceLookup:
		return NewLookupSource(LookupConfig{
			Timeout:         cfg.Timeout,
			CTLogURL:        cfg.CTLogURL,
			ObservatoryURL:  cfg.ObservatoryURL,
			ObservatoryWait: cfg.ObservatoryWait,
		}), nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)", sharedErrors.ErrUnsupportedSource, name, strings.Join(SourceNames(), ", "))
}
