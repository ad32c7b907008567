package pqc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classified(t *testing.T, role Role, raw string) *Classification {
	t.Helper()
	c, ok := Classify(role, raw)
	require.True(t, ok)
	return &c
}

func TestDeriveReadiness_GreenOnQuantumAsymmetric(t *testing.T) {
	for _, sym := range []string{"", "RC4", "TLS_AES_256_GCM_SHA384"} {
		assert.Equal(t, Green, DeriveReadiness(classified(t, KeyExchange, "X25519MLKEM768"), nil, sym))
		assert.Equal(t, Green, DeriveReadiness(nil, classified(t, Signature, "ML-DSA-87"), sym))
	}
}

func TestDeriveReadiness_YellowOnStrongSymmetric(t *testing.T) {
	kex := classified(t, KeyExchange, "X25519")
	sig := classified(t, Signature, "SHA256-RSA")

	assert.Equal(t, Yellow, DeriveReadiness(kex, sig, "TLS_AES_256_GCM_SHA384"))
	assert.Equal(t, Yellow, DeriveReadiness(kex, sig, "TLS_CHACHA20_POLY1305_SHA256"))
	assert.Equal(t, Yellow, DeriveReadiness(nil, nil, "aes-256-gcm"))
	assert.Equal(t, Red, DeriveReadiness(kex, sig, "TLS_AES_128_GCM_SHA256"))
}

func TestDeriveReadiness_IgnoresSymmetricClassification(t *testing.T) {
	// Unknown family in the key exchange role must not count as quantum.
	unknown := classified(t, KeyExchange, "mystery-group")
	assert.Equal(t, FamilyUnknown, unknown.Family)
	assert.Equal(t, Red, DeriveReadiness(unknown, nil, ""))
}

func TestDeriveReadiness_AllAbsentIsRed(t *testing.T) {
	assert.Equal(t, Red, DeriveReadiness(nil, nil, ""))
}

func TestAssess_Examples(t *testing.T) {
	tests := []struct {
		name      string
		kex       string
		sig       string
		sym       string
		want      Readiness
		kexFamily Family
	}{
		{name: "kyber draft", kex: "X25519Kyber768Draft00", want: Green, kexFamily: FamilyQuantum},
		{name: "strong symmetric only", sym: "TLS_AES_256_GCM_SHA384", want: Yellow},
		{name: "rsa signature only", sig: "rsaEncryption", want: Red},
		{name: "total failure", want: Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.kex, tt.sig, tt.sym)
			assert.Equal(t, tt.want, got.Readiness)
			if tt.kex == "" {
				assert.Nil(t, got.Cryptography.KeyExchange)
			} else {
				require.NotNil(t, got.Cryptography.KeyExchange)
				assert.Equal(t, tt.kexFamily, got.Cryptography.KeyExchange.Family)
			}
			if tt.sig == "" {
				assert.Nil(t, got.Cryptography.Signature)
			} else {
				require.NotNil(t, got.Cryptography.Signature)
				assert.Equal(t, FamilyClassical, got.Cryptography.Signature.Family)
				assert.Equal(t, StrengthClassical, got.Cryptography.Signature.Strength)
			}
			if tt.sym == "" {
				assert.Nil(t, got.Cryptography.Symmetric)
			}
		})
	}
}

func TestReadinessOrderingAndLabels(t *testing.T) {
	assert.True(t, Green.Better(Yellow))
	assert.True(t, Yellow.Better(Red))
	assert.False(t, Red.Better(Red))
	assert.Equal(t, "PQ Ready", Green.Label())
	assert.Equal(t, "Classical TLS 1.3", Yellow.Label())
	assert.Equal(t, "Not PQ Ready", Red.Label())
}

func TestReference_AllQuantum(t *testing.T) {
	refs := Reference()
	require.Len(t, refs, 6)
	for _, ref := range refs {
		assert.NotEmpty(t, ref.Name)
		assert.Equal(t, FamilyQuantum, ref.Classification.Family, ref.Name)
		assert.Equal(t, ref.Name, ref.Classification.Algorithm)
	}
}
