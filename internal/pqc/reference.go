package pqc

import (
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem512"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// ReferenceAlgorithm is a standardized post-quantum scheme and how the
// pattern table classifies its canonical name.
type ReferenceAlgorithm struct {
	Name           string         `json:"name" yaml:"name"`
	Role           string         `json:"role" yaml:"role"`
	Standard       string         `json:"standard" yaml:"standard"`
	Classification Classification `json:"classification" yaml:"classification"`
}

// Reference lists the NIST FIPS 203/204 schemes shipped by CIRCL with their
// classification under the default table.
func Reference() []ReferenceAlgorithm {
	kems := []string{
		mlkem512.Scheme().Name(),
		mlkem768.Scheme().Name(),
		mlkem1024.Scheme().Name(),
	}
	sigs := []string{
		mldsa44.Scheme().Name(),
		mldsa65.Scheme().Name(),
		mldsa87.Scheme().Name(),
	}

	out := make([]ReferenceAlgorithm, 0, len(kems)+len(sigs))
	for _, name := range kems {
		c, _ := Classify(KeyExchange, name)
		out = append(out, ReferenceAlgorithm{Name: name, Role: KeyExchange.String(), Standard: "FIPS 203", Classification: c})
	}
	for _, name := range sigs {
		c, _ := Classify(Signature, name)
		out = append(out, ReferenceAlgorithm{Name: name, Role: Signature.String(), Standard: "FIPS 204", Classification: c})
	}
	return out
}
