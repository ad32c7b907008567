package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	consts "github.com/khanhnv2901/pqcheck/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

// LookupConfig configures a LookupSource.
type LookupConfig struct {
	Timeout         time.Duration
	CTLogURL        string
	ObservatoryURL  string
	ObservatoryWait time.Duration
	Client          *http.Client
}

// LookupSource observes a target through third-party services instead of
// connecting to it: the certificate comes from a certificate-transparency
// log and the negotiated connection from a Mozilla TLS Observatory scan.
type LookupSource struct {
	client          *http.Client
	ctLogURL        string
	observatoryURL  string
	observatoryWait time.Duration
}

func NewLookupSource(cfg LookupConfig) *LookupSource {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = consts.DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	ctLog := cfg.CTLogURL
	if ctLog == "" {
		ctLog = consts.CTLogURL
	}
	observatory := cfg.ObservatoryURL
	if observatory == "" {
		observatory = consts.ObservatoryURL
	}
	wait := cfg.ObservatoryWait
	if wait < 0 {
		wait = 0
	}
	return &LookupSource{
		client:          client,
		ctLogURL:        strings.TrimRight(ctLog, "/"),
		observatoryURL:  strings.TrimRight(observatory, "/"),
		observatoryWait: wait,
	}
}

// Name returns the name of this source
func (l *LookupSource) Name() string {
	return SourceLookup
}

type ctIssuance struct {
	DNSNames []string `json:"dns_names"`
	Cert     struct {
		Issuer struct {
			Name string `json:"name"`
		} `json:"issuer"`
		NotBefore          string `json:"not_before"`
		NotAfter           string `json:"not_after"`
		SignatureAlgorithm string `json:"signature_algorithm"`
	} `json:"cert"`
}

type observatoryScan struct {
	ScanID json.RawMessage `json:"scan_id"`
}

type observatoryResults struct {
	ConnectionInfo struct {
		Protocols []string `json:"protocols"`
		Cipher    struct {
			Name string `json:"name"`
			Kex  string `json:"kex"`
		} `json:"cipher"`
		Cert struct {
			Key struct {
				Size int `json:"size"`
			} `json:"key"`
		} `json:"cert"`
	} `json:"connection_info"`
}

// Observe queries the CT log, starts an Observatory scan, waits for it and
// merges both answers. Any transport, status or decoding failure aborts the
// whole observation.
func (l *LookupSource) Observe(ctx context.Context, target string) (*Observation, error) {
	info, err := ParseTarget(target)
	if err != nil {
		return nil, err
	}
	domain := info.Host

	var issuances []ctIssuance
	ctQuery := url.Values{}
	ctQuery.Set("domain", domain)
	ctQuery.Set("expand", "dns_names,cert_der")
	ctQuery.Set("include_subdomains", "false")
	if err := l.doJSON(ctx, http.MethodGet, l.ctLogURL+"?"+ctQuery.Encode(), &issuances); err != nil {
		return nil, fmt.Errorf("certificate transparency lookup: %w", err)
	}

	var scan observatoryScan
	scanQuery := url.Values{}
	scanQuery.Set("target", domain)
	if err := l.doJSON(ctx, http.MethodPost, l.observatoryURL+"/scan?"+scanQuery.Encode(), &scan); err != nil {
		return nil, fmt.Errorf("observatory scan: %w", err)
	}
	scanID := strings.Trim(strings.TrimSpace(string(scan.ScanID)), `"`)
	if scanID == "" || scanID == "null" {
		return nil, fmt.Errorf("observatory scan: %w: missing scan_id", sharedErrors.ErrMalformedPayload)
	}

	if err := sleepContext(ctx, l.observatoryWait); err != nil {
		return nil, err
	}

	var results observatoryResults
	resultsQuery := url.Values{}
	resultsQuery.Set("id", scanID)
	if err := l.doJSON(ctx, http.MethodGet, l.observatoryURL+"/results?"+resultsQuery.Encode(), &results); err != nil {
		return nil, fmt.Errorf("observatory results: %w", err)
	}

	conn := results.ConnectionInfo
	obs := &Observation{
		Host:        domain,
		Source:      SourceLookup,
		Protocols:   conn.Protocols,
		Cipher:      conn.Cipher.Name,
		KeyExchange: conn.Cipher.Kex,
		Cert: CertInfo{
			Subject: domain,
			KeySize: conn.Cert.Key.Size,
		},
	}
	if obs.Protocols == nil {
		obs.Protocols = []string{}
	}
	if len(issuances) > 0 {
		first := issuances[0]
		if len(first.DNSNames) > 0 && first.DNSNames[0] != "" {
			obs.Cert.Subject = first.DNSNames[0]
		}
		obs.Cert.Issuer = first.Cert.Issuer.Name
		obs.Cert.ValidFrom = first.Cert.NotBefore
		obs.Cert.ValidTo = first.Cert.NotAfter
		obs.Cert.SignatureAlgorithm = first.Cert.SignatureAlgorithm
	}
	return obs, nil
}

func (l *LookupSource) doJSON(ctx context.Context, method, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, consts.MaxUpstreamBodyBytes)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, body)
		return fmt.Errorf("%w: %s", sharedErrors.ErrUpstreamStatus, resp.Status)
	}
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", sharedErrors.ErrMalformedPayload, err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
