package pqc

// Classify classifies a raw algorithm name for role using the default table.
// The boolean is false when raw is empty; no Classification exists then.
// Whitespace is a present value and classifies as unknown.
func Classify(role Role, raw string) (Classification, bool) {
	return defaultTable.Classify(role, raw)
}

// Classify classifies raw against t. See the package Classify.
func (t *Table) Classify(role Role, raw string) (Classification, bool) {
	if raw == "" {
		return Classification{}, false
	}
	family := t.match(role, normalize(raw))
	return Classification{
		Family:    family,
		Algorithm: raw,
		Strength:  strengthOf(family),
	}, true
}

// ClassifyConnection classifies the three roles of a connection independently.
func ClassifyConnection(keyExchange, signature, symmetric string) Cryptography {
	return defaultTable.ClassifyConnection(keyExchange, signature, symmetric)
}

func (t *Table) ClassifyConnection(keyExchange, signature, symmetric string) Cryptography {
	return Cryptography{
		KeyExchange: t.classifyPtr(KeyExchange, keyExchange),
		Signature:   t.classifyPtr(Signature, signature),
		Symmetric:   t.classifyPtr(Symmetric, symmetric),
	}
}

func (t *Table) classifyPtr(role Role, raw string) *Classification {
	c, ok := t.Classify(role, raw)
	if !ok {
		return nil
	}
	return &c
}
