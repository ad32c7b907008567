package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

// CatalogEntry lists the patterns that map to one family for one role.
type CatalogEntry struct {
	Role     string   `json:"role" yaml:"role"`
	Family   string   `json:"family" yaml:"family"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

// Catalog is everything the classifier recognizes.
type Catalog struct {
	Patterns        []CatalogEntry           `json:"patterns" yaml:"patterns"`
	StrongSymmetric []string                 `json:"strongSymmetric" yaml:"strongSymmetric"`
	Reference       []pqc.ReferenceAlgorithm `json:"reference" yaml:"reference"`
}

var catalogFormat string

var catalogRoles = []pqc.Role{pqc.KeyExchange, pqc.Signature, pqc.Symmetric}

var catalogFamilies = []pqc.Family{pqc.FamilyQuantum, pqc.FamilyHybrid, pqc.FamilyClassical}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the algorithm patterns and reference PQ schemes the classifier knows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseOutputFormat(catalogFormat)
		if err != nil {
			return err
		}

		catalog := buildCatalog(pqc.DefaultTable())
		out := cmd.OutOrStdout()
		if format != formatText {
			return writeStructured(out, format, catalog)
		}

		fmt.Fprintln(out, colorBold("Patterns (normalized, matched by substring)"))
		for _, e := range catalog.Patterns {
			fmt.Fprintf(out, "  %-13s %-10s %s\n", e.Role, e.Family, strings.Join(e.Patterns, ", "))
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %s\n", colorBold("Strong symmetric:"), strings.Join(catalog.StrongSymmetric, ", "))
		fmt.Fprintln(out)
		fmt.Fprintln(out, colorBold("Reference schemes"))
		for _, ref := range catalog.Reference {
			fmt.Fprintf(out, "  %-12s %-13s %-10s %s\n", ref.Name, ref.Role, ref.Standard, formatStrengthWithColor(ref.Classification.Strength))
		}
		return nil
	},
}

// buildCatalog collects the non-empty pattern sets of t in priority order.
func buildCatalog(t *pqc.Table) Catalog {
	catalog := Catalog{
		StrongSymmetric: t.StrongSymmetric(),
		Reference:       pqc.Reference(),
	}
	for _, role := range catalogRoles {
		for _, family := range catalogFamilies {
			patterns := t.Patterns(role, family)
			if len(patterns) == 0 {
				continue
			}
			catalog.Patterns = append(catalog.Patterns, CatalogEntry{
				Role:     role.String(),
				Family:   string(family),
				Patterns: patterns,
			})
		}
	}
	return catalog
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", string(formatText), "output format: text, json or yaml")
}
