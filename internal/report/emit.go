// Package report drives a document builder through the fixed sbom2doc
// document sequence: summary, per-package details, optional license-text
// appendix and the component type table.
package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/package-url/packageurl-go"

	"github.com/georgkoester/sbom2doc/internal/docbuilder"
	"github.com/georgkoester/sbom2doc/internal/license"
	"github.com/georgkoester/sbom2doc/internal/model"
)

// Options controls the emitted document.
type Options struct {
	// SourceFile is the SBOM filename shown in the summary.
	SourceFile string
	// IncludeLicenseText adds the license-text appendix.
	IncludeLicenseText bool
}

// Emit renders the document for an SBOM and its aggregated license summary
// and publishes it to dest.
func Emit(b docbuilder.Builder, s *model.SBOM, sum *license.Summary, diag *license.Diagnostics, opts Options, dest string) error {
	b.Heading(1, "SBOM Summary")
	b.Paragraph(fmt.Sprintf(
		"SBOM File: %s\nSBOM Type: %s\nVersion: %s\nName: %s\nCreated: %s\nFiles: %d\nPackages: %d\nRelationships: %d",
		filepath.Base(opts.SourceFile),
		s.Document.Type,
		s.Document.Version,
		s.Document.Name,
		s.Document.Created,
		len(s.Files),
		len(s.Packages),
		len(s.Relationships),
	))

	if len(s.Packages) > 0 {
		b.Heading(1, "Package Information")
		for _, p := range s.Packages {
			emitPackage(b, p, diag)
		}
	}

	if opts.IncludeLicenseText {
		emitLicenseTexts(b, sum)
	}

	b.Heading(1, "Component Type Summary")
	b.CreateTable([]string{"Type", "Count"}, []int{20, 10})
	for _, kv := range sortedByCount(sum.TypeCounts) {
		b.AddRow([]string{kv.Key, strconv.Itoa(kv.Count)})
	}
	b.ShowTable([]int{10, 3})

	emitEcosystems(b, s.Packages)

	return b.Publish(dest)
}

func emitPackage(b docbuilder.Builder, p model.Package, diag *license.Diagnostics) {
	refs := license.ExtractLicenses(p, diag)
	display := make([]string, len(refs))
	for i, r := range refs {
		if license.Classify(r) == license.KindExpression {
			display[i] = r
			continue
		}
		display[i] = license.Resolve(r)
	}

	b.Heading(2, fmt.Sprintf("Package: %s", p.ID))
	b.Paragraph(fmt.Sprintf(
		"ID: %s\nName: %s\nVersion: %s\nType: %s\nLicense id(s) or text: %s",
		p.ID, p.Name, p.Version, p.Type, strings.Join(display, "\n"),
	))

	copyright := license.ExtractCopyright(p, diag)
	if copyright != license.NotKnown {
		b.Paragraph("Copyright:")
		b.SmallParagraph(copyright)
	}
}

func emitLicenseTexts(b docbuilder.Builder, sum *license.Summary) {
	b.Heading(1, "License Texts")
	for _, e := range sum.SortedEntries() {
		if e.ID == license.UnknownLicense || e.ID == license.NoAssertion || e.ID == "" {
			continue
		}
		b.Heading(2, docbuilder.EnsureLen(e.ID, 50))
		b.Paragraph("License:")
		text := e.Text
		if text == "" {
			text = fmt.Sprintf("No license text for id %s", e.ID)
		}
		b.SmallParagraph(text)
	}
}

// emitEcosystems adds a PURL ecosystem table when any package carries a
// parseable package URL.
func emitEcosystems(b docbuilder.Builder, packages []model.Package) {
	counts := map[string]int{}
	for _, p := range packages {
		if p.PURL == "" {
			continue
		}
		purl, err := packageurl.FromString(p.PURL)
		if err != nil {
			continue
		}
		counts[purl.Type]++
	}
	if len(counts) == 0 {
		return
	}

	b.Heading(1, "Ecosystem Summary")
	b.CreateTable([]string{"Ecosystem", "Count"}, []int{20, 10})
	for _, kv := range sortedByCount(counts) {
		b.AddRow([]string{kv.Key, strconv.Itoa(kv.Count)})
	}
	b.ShowTable([]int{10, 3})
}

type keyCount struct {
	Key   string
	Count int
}

// sortedByCount orders counts descending, breaking ties by key for stable
// output.
func sortedByCount(counts map[string]int) []keyCount {
	result := make([]keyCount, 0, len(counts))
	for k, v := range counts {
		result = append(result, keyCount{Key: k, Count: v})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Key < result[j].Key
	})
	return result
}
