package pqc

// DeriveReadiness folds a connection's classifications into a verdict.
//
// Only the asymmetric roles can reach Green. A strong symmetric cipher earns
// Yellow; the check runs on the raw symmetric name against the allow-list
// and ignores the symmetric Classification. Nil classifications and an empty
// symmetric name never match.
func DeriveReadiness(keyExchange, signature *Classification, symmetricRaw string) Readiness {
	return defaultTable.DeriveReadiness(keyExchange, signature, symmetricRaw)
}

func (t *Table) DeriveReadiness(keyExchange, signature *Classification, symmetricRaw string) Readiness {
	if isQuantum(keyExchange) || isQuantum(signature) {
		return Green
	}
	if t.IsStrongSymmetric(symmetricRaw) {
		return Yellow
	}
	return Red
}

// IsStrongSymmetric reports whether raw names a cipher on the allow-list.
func (t *Table) IsStrongSymmetric(raw string) bool {
	n := normalize(raw)
	if n == "" {
		return false
	}
	return containsAny(n, t.strongSymmetric)
}

func isQuantum(c *Classification) bool {
	return c != nil && c.Family == FamilyQuantum
}

// Assessment is the classifier's complete output for one connection.
type Assessment struct {
	Cryptography Cryptography `json:"cryptography" yaml:"cryptography"`
	Readiness    Readiness    `json:"pqStatus" yaml:"pqStatus"`
}

// Assess classifies the three raw names and derives the verdict.
func Assess(keyExchange, signature, symmetric string) Assessment {
	crypto := ClassifyConnection(keyExchange, signature, symmetric)
	return Assessment{
		Cryptography: crypto,
		Readiness:    DeriveReadiness(crypto.KeyExchange, crypto.Signature, symmetric),
	}
}
