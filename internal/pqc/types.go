package pqc

import (
	"fmt"
	"strings"
)

// Role identifies which part of a TLS connection an algorithm name describes.
type Role int

const (
	KeyExchange Role = iota
	Signature
	Symmetric
)

var roleNames = map[Role]string{
	KeyExchange: "key-exchange",
	Signature:   "signature",
	Symmetric:   "symmetric",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole accepts the long role names as well as the kex/sig/sym shorthands.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kex", "key-exchange", "keyexchange", "key_exchange":
		return KeyExchange, nil
	case "sig", "signature":
		return Signature, nil
	case "sym", "symmetric", "cipher":
		return Symmetric, nil
	}
	return 0, fmt.Errorf("unknown role %q (use kex, sig or sym)", s)
}

// Family is the algorithm family a pattern match resolved to.
type Family string

const (
	FamilyClassical Family = "classical"
	FamilyHybrid    Family = "hybrid"
	FamilyQuantum   Family = "quantum"
	// FamilyUnknown means the name was present but matched no pattern.
	FamilyUnknown Family = "unknown"
)

// Strength is the quantum resistance attributed to a classified algorithm.
type Strength string

const (
	StrengthClassical Strength = "classical"
	StrengthHybrid    Strength = "hybrid"
	StrengthQuantum   Strength = "quantum"
)

// strengthOf maps a family to its strength. Unknown names are treated as
// classical.
func strengthOf(f Family) Strength {
	switch f {
	case FamilyQuantum:
		return StrengthQuantum
	case FamilyHybrid:
		return StrengthHybrid
	default:
		return StrengthClassical
	}
}

// Classification describes one observed algorithm.
type Classification struct {
	Family    Family   `json:"family" yaml:"family"`
	Algorithm string   `json:"algorithm" yaml:"algorithm"`
	Strength  Strength `json:"strength" yaml:"strength"`
}

// Cryptography holds the per-role classifications of one connection. A nil
// field means the upstream source reported nothing for that role.
type Cryptography struct {
	KeyExchange *Classification `json:"keyExchange" yaml:"keyExchange"`
	Signature   *Classification `json:"signature" yaml:"signature"`
	Symmetric   *Classification `json:"symmetric" yaml:"symmetric"`
}

// Readiness is the overall post-quantum verdict for a connection.
type Readiness string

const (
	Green  Readiness = "green"
	Yellow Readiness = "yellow"
	Red    Readiness = "red"
)

// Label is the human readable verdict shown next to the color.
func (r Readiness) Label() string {
	switch r {
	case Green:
		return "PQ Ready"
	case Yellow:
		return "Classical TLS 1.3"
	default:
		return "Not PQ Ready"
	}
}

// Rank orders verdicts so that Green > Yellow > Red.
func (r Readiness) Rank() int {
	switch r {
	case Green:
		return 2
	case Yellow:
		return 1
	default:
		return 0
	}
}

// Better reports whether r is a strictly better verdict than other.
func (r Readiness) Better(other Readiness) bool {
	return r.Rank() > other.Rank()
}
