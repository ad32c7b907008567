package checker

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"time"

	consts "github.com/khanhnv2901/pqcheck/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

// ProbeSource observes a target by completing a TLS handshake with it.
// Certificates are not verified; the probe only reports what was negotiated.
type ProbeSource struct {
	Timeout time.Duration
}

// Name returns the name of this source
func (p *ProbeSource) Name() string {
	return SourceProbe
}

// Observe dials the target and reports the negotiated protocol, cipher suite,
// key exchange group and leaf certificate.
func (p *ProbeSource) Observe(ctx context.Context, target string) (*Observation, error) {
	info, err := ParseTarget(target)
	if err != nil {
		return nil, err
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = consts.DefaultTimeout
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: timeout},
		Config: &tls.Config{
			ServerName:         info.Host,
			InsecureSkipVerify: true, // #nosec G402 -- probe reports self-signed and expired certs too.
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", info.Address())
	if err != nil {
		return nil, fmt.Errorf("tls dial %s: %w", info.Address(), err)
	}
	defer conn.Close()

	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		return nil, fmt.Errorf("tls dial %s: unexpected connection type %T", info.Address(), conn)
	}
	return observationFromState(info.Host, tlsConn.ConnectionState())
}

func observationFromState(host string, state tls.ConnectionState) (*Observation, error) {
	if len(state.PeerCertificates) == 0 {
		return nil, sharedErrors.ErrNoCertificate
	}

	obs := &Observation{
		Host:        host,
		Source:      SourceProbe,
		Protocols:   []string{tlsVersionString(state.Version)},
		Cipher:      cipherSuiteString(state.CipherSuite),
		KeyExchange: curveString(state.CurveID),
		Cert:        certInfoFromX509(host, state.PeerCertificates[0]),
	}
	if state.NegotiatedProtocol != "" {
		obs.Protocols = append(obs.Protocols, state.NegotiatedProtocol)
	}
	return obs, nil
}

func certInfoFromX509(host string, cert *x509.Certificate) CertInfo {
	info := CertInfo{
		Subject:            cert.Subject.CommonName,
		Issuer:             cert.Issuer.CommonName,
		ValidFrom:          cert.NotBefore.UTC().Format(time.RFC3339),
		ValidTo:            cert.NotAfter.UTC().Format(time.RFC3339),
		SignatureAlgorithm: cert.SignatureAlgorithm.String(),
		KeySize:            publicKeyBits(cert.PublicKey),
	}
	if info.Subject == "" {
		info.Subject = host
	}
	if info.Issuer == "" {
		info.Issuer = "Unknown"
	}
	return info
}

func publicKeyBits(pub any) int {
	switch key := pub.(type) {
	case *rsa.PublicKey:
		return key.N.BitLen()
	case *ecdsa.PublicKey:
		return key.Curve.Params().BitSize
	case ed25519.PublicKey:
		return 256
	}
	return 0
}

// curveString names the key exchange group, or "" when none was reported
// (for example RSA key transport in TLS 1.2).
func curveString(id tls.CurveID) string {
	if id == 0 {
		return ""
	}
	return id.String()
}

// tlsVersionString converts TLS version constant to string
func tlsVersionString(version uint16) string {
	switch version {
	case tls.VersionTLS10:
		return "TLS 1.0"
	case tls.VersionTLS11:
		return "TLS 1.1"
	case tls.VersionTLS12:
		return "TLS 1.2"
	case tls.VersionTLS13:
		return "TLS 1.3"
	default:
		return fmt.Sprintf("Unknown (0x%04x)", version)
	}
}

// cipherSuiteString converts cipher suite constant to string
func cipherSuiteString(suite uint16) string {
	if name := tls.CipherSuiteName(suite); name != "" {
		return name
	}
	return fmt.Sprintf("Unknown (0x%04x)", suite)
}
