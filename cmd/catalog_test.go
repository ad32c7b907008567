package cmd

import (
	"strings"
	"testing"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

func TestBuildCatalog(t *testing.T) {
	catalog := buildCatalog(pqc.DefaultTable())

	// kex has three families, sig two, sym one.
	if len(catalog.Patterns) != 6 {
		t.Fatalf("expected 6 pattern groups, got %d: %+v", len(catalog.Patterns), catalog.Patterns)
	}
	first := catalog.Patterns[0]
	if first.Role != "key-exchange" || first.Family != string(pqc.FamilyQuantum) {
		t.Fatalf("expected key-exchange quantum patterns first, got %+v", first)
	}
	if len(catalog.StrongSymmetric) != 2 {
		t.Fatalf("expected two strong symmetric entries, got %v", catalog.StrongSymmetric)
	}

	for _, ref := range catalog.Reference {
		if ref.Classification.Strength != pqc.StrengthQuantum {
			t.Errorf("reference scheme %s classified as %s", ref.Name, ref.Classification.Strength)
		}
	}
}

func TestCatalogCommandText(t *testing.T) {
	disableColor(t)
	saved := catalogFormat
	t.Cleanup(func() { catalogFormat = saved })
	catalogFormat = "text"

	out, err := runCommand(t, catalogCmd)
	if err != nil {
		t.Fatalf("catalog failed: %v", err)
	}
	for _, want := range []string{"Patterns", "key-exchange", "mlkem", "Strong symmetric:", "ML-KEM-768", "ML-DSA-65"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCatalogCommandJSON(t *testing.T) {
	saved := catalogFormat
	t.Cleanup(func() { catalogFormat = saved })
	catalogFormat = "json"

	out, err := runCommand(t, catalogCmd)
	if err != nil {
		t.Fatalf("catalog failed: %v", err)
	}
	if !strings.Contains(out, `"strongSymmetric"`) || !strings.Contains(out, `"reference"`) {
		t.Fatalf("unexpected JSON: %s", out)
	}
}
