package checker

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	consts "github.com/khanhnv2901/pqcheck/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

// TargetInfo contains parsed target information
type TargetInfo struct {
	Original string // Original target string
	Host     string // Hostname (without scheme, path, port)
	Port     string // Port, defaulting to 443
}

// Address returns host:port suitable for dialing.
func (t *TargetInfo) Address() string {
	return net.JoinHostPort(t.Host, t.Port)
}

// ParseTarget parses a target string into host and port.
// Accepted forms:
//   - example.com
//   - https://example.com/path
//   - example.com:8443
//   - https://[::1]:8443
func ParseTarget(target string) (*TargetInfo, error) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return nil, sharedErrors.ErrEmptyTarget
	}

	raw := trimmed
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", sharedErrors.ErrInvalidTarget, target)
	}

	info := &TargetInfo{
		Original: target,
		Host:     strings.TrimSuffix(strings.ToLower(parsed.Hostname()), "."),
		Port:     parsed.Port(),
	}
	if info.Port == "" {
		info.Port = consts.DefaultTLSPort
	}
	if !validHost(info.Host) {
		return nil, fmt.Errorf("%w: %s", sharedErrors.ErrInvalidTarget, target)
	}
	return info, nil
}

// ExtractHost returns just the hostname of a target, or "" if it does not parse.
func ExtractHost(target string) string {
	info, err := ParseTarget(target)
	if err != nil {
		return ""
	}
	return info.Host
}

func validHost(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	for _, label := range strings.Split(host, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			default:
				return false
			}
		}
	}
	return true
}
