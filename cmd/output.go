package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/khanhnv2901/pqcheck/internal/checker"
	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch outputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", formatText:
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	}
	return "", &FormatError{Format: s}
}

// writeStructured encodes v as indented JSON or YAML.
func writeStructured(w io.Writer, format outputFormat, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return &FormatError{Format: string(format)}
}

func describeClassification(c *pqc.Classification) string {
	if c == nil {
		return "absent"
	}
	return fmt.Sprintf("%s  %s/%s", c.Algorithm, c.Family, formatStrengthWithColor(c.Strength))
}

func printCryptography(w io.Writer, indent string, crypto pqc.Cryptography) {
	fmt.Fprintf(w, "%sKey exchange:  %s\n", indent, describeClassification(crypto.KeyExchange))
	fmt.Fprintf(w, "%sSignature:     %s\n", indent, describeClassification(crypto.Signature))
	fmt.Fprintf(w, "%sSymmetric:     %s\n", indent, describeClassification(crypto.Symmetric))
}

func printAssessment(w io.Writer, a pqc.Assessment) {
	printCryptography(w, "", a.Cryptography)
	fmt.Fprintf(w, "Verdict:       %s\n", formatVerdictWithColor(a.Readiness))
}

func printReport(w io.Writer, r *checker.Report) {
	fmt.Fprintf(w, "%s  [%s]  source=%s\n", colorBold(r.Host), formatStatusWithColor(r.Status), r.Source)
	if r.Failed() {
		fmt.Fprintf(w, "  Error:         %s\n", r.Error)
	}
	if len(r.Protocols) > 0 {
		fmt.Fprintf(w, "  Protocols:     %s\n", strings.Join(r.Protocols, ", "))
	}
	if r.Cipher != "" {
		fmt.Fprintf(w, "  Cipher:        %s\n", r.Cipher)
	}
	if r.CertInfo.Subject != "" {
		fmt.Fprintf(w, "  Certificate:   %s (issuer %s)\n", r.CertInfo.Subject, valueOr(r.CertInfo.Issuer, "Unknown"))
	}
	if r.CertInfo.ValidTo != "" {
		fmt.Fprintf(w, "  Valid:         %s to %s\n", valueOr(r.CertInfo.ValidFrom, "?"), r.CertInfo.ValidTo)
	}
	if r.CertInfo.KeySize > 0 {
		fmt.Fprintf(w, "  Key size:      %d bits\n", r.CertInfo.KeySize)
	}
	printCryptography(w, "  ", r.Cryptography)
	fmt.Fprintf(w, "  Verdict:       %s\n", formatVerdictWithColor(r.PQStatus))
}

func printSummary(w io.Writer, s checker.Summary) {
	fmt.Fprintf(w, "%d target(s): %s %d  %s %d  %s %d  errors %d\n",
		s.Total,
		colorSuccess("green"), s.Green,
		colorWarn("yellow"), s.Yellow,
		colorError("red"), s.Red,
		s.Errors,
	)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
