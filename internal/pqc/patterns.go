package pqc

import "strings"

// familyPatterns is one family's ordered list of normalized substrings.
type familyPatterns struct {
	family   Family
	patterns []string
}

// Table is the pattern table the classifier matches against. It is built once
// at package initialization and never modified afterwards; accessors hand out
// copies.
type Table struct {
	roles           map[Role][]familyPatterns
	strongSymmetric []string
}

// Families are checked in this order. The first family with a matching
// pattern wins, so quantum and hybrid names that embed a classical curve or
// cipher token are not reported as classical.
var familyPriority = []Family{FamilyQuantum, FamilyHybrid, FamilyClassical}

var defaultTable = newTable(
	map[Role]map[Family][]string{
		KeyExchange: {
			FamilyQuantum:   {"kyber", "ml-kem", "sike", "ntru"},
			FamilyHybrid:    {"p384_kyber768", "x25519_kyber768"},
			FamilyClassical: {"p256", "p384", "p521", "x25519", "secp256k1"},
		},
		Signature: {
			FamilyQuantum:   {"dilithium", "falcon", "sphincs", "ml-dsa", "slh-dsa"},
			FamilyClassical: {"rsa", "ecdsa", "ed25519"},
		},
		Symmetric: {
			FamilyClassical: {"aes-128", "aes-256", "chacha20"},
		},
	},
	[]string{"aes-256-gcm", "chacha20-poly1305"},
)

func newTable(raw map[Role]map[Family][]string, strong []string) *Table {
	t := &Table{
		roles:           make(map[Role][]familyPatterns, len(raw)),
		strongSymmetric: normalizeAll(strong),
	}
	for role, families := range raw {
		for _, fam := range familyPriority {
			pats, ok := families[fam]
			if !ok || len(pats) == 0 {
				continue
			}
			t.roles[role] = append(t.roles[role], familyPatterns{family: fam, patterns: normalizeAll(pats)})
		}
	}
	return t
}

// DefaultTable returns the process-wide pattern table.
func DefaultTable() *Table {
	return defaultTable
}

// Patterns returns the normalized patterns registered for role and family,
// or nil if there are none.
func (t *Table) Patterns(role Role, family Family) []string {
	for _, fp := range t.roles[role] {
		if fp.family == family {
			return append([]string(nil), fp.patterns...)
		}
	}
	return nil
}

// StrongSymmetric returns the normalized strong-symmetric allow-list.
func (t *Table) StrongSymmetric() []string {
	return append([]string(nil), t.strongSymmetric...)
}

// match returns the family of the first pattern group that has a substring
// of value, or FamilyUnknown. value must already be normalized.
func (t *Table) match(role Role, value string) Family {
	for _, fp := range t.roles[role] {
		if containsAny(value, fp.patterns) {
			return fp.family
		}
	}
	return FamilyUnknown
}

func containsAny(value string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(value, p) {
			return true
		}
	}
	return false
}

// separatorFolder drops the separators vendors use inconsistently, so
// "TLS_AES_256_GCM_SHA384", "aes-256-gcm" and "AES 256 GCM" compare equal.
var separatorFolder = strings.NewReplacer("-", "", "_", "", " ", "", ".", "", "/", "")

// normalize returns the canonical comparison form of an algorithm name.
func normalize(s string) string {
	return separatorFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
