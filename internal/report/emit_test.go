package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/georgkoester/sbom2doc/internal/license"
	"github.com/georgkoester/sbom2doc/internal/model"
)

// recorder captures builder calls for sequence assertions.
type recorder struct {
	calls     []string
	published string
}

func (r *recorder) Heading(level int, text string) {
	r.calls = append(r.calls, fmt.Sprintf("heading%d:%s", level, text))
}

func (r *recorder) Paragraph(text string) {
	r.calls = append(r.calls, "paragraph:"+text)
}

func (r *recorder) SmallParagraph(text string) {
	r.calls = append(r.calls, "small:"+text)
}

func (r *recorder) CreateTable(columns []string, widths []int) {
	r.calls = append(r.calls, "table:"+strings.Join(columns, ","))
}

func (r *recorder) AddRow(cells []string) {
	r.calls = append(r.calls, "row:"+strings.Join(cells, ","))
}

func (r *recorder) ShowTable(widths []int) {
	r.calls = append(r.calls, "showtable")
}

func (r *recorder) Publish(dest string) error {
	r.published = dest
	r.calls = append(r.calls, "publish")
	return nil
}

func testSBOM() *model.SBOM {
	return &model.SBOM{
		Document: model.Document{Type: "CycloneDX", Version: "1.6", Name: "demo", Created: "2024-01-01"},
		Packages: []model.Package{
			{
				ID: "pkg-a@1.0", Name: "pkg-a", Version: "1.0", Type: "library",
				Supplier: "Acme", PURL: "pkg:npm/pkg-a@1.0",
				Licenses:      []model.LicenseChoice{{ID: "MIT"}},
				CopyrightText: "Copyright 2024 Acme",
			},
			{
				ID: "pkg-b@2.0", Name: "pkg-b", Version: "2.0", Type: "library",
				Supplier: "Acme", PURL: "pkg:npm/pkg-b@2.0",
				Licenses: []model.LicenseChoice{{Name: "Apache-2.0 license"}},
			},
		},
	}
}

func aggregateTestSBOM(t *testing.T, s *model.SBOM) (*license.Summary, *license.Diagnostics) {
	t.Helper()
	diag := license.NewDiagnostics()
	agg := license.NewAggregator(zerolog.Nop(), diag)
	return agg.Aggregate(s.Packages, s.Files), diag
}

func TestEmitSequence(t *testing.T) {
	s := testSBOM()
	sum, diag := aggregateTestSBOM(t, s)

	rec := &recorder{}
	err := Emit(rec, s, sum, diag, Options{SourceFile: "demo-sbom.json"}, "out.txt")
	if err != nil {
		t.Fatal(err)
	}

	if rec.published != "out.txt" {
		t.Errorf("published to %q", rec.published)
	}

	wantOrder := []string{
		"heading1:SBOM Summary",
		"heading1:Package Information",
		"heading2:Package: pkg-a@1.0",
		"heading2:Package: pkg-b@2.0",
		"heading1:Component Type Summary",
		"heading1:Ecosystem Summary",
		"publish",
	}
	assertSubsequence(t, rec.calls, wantOrder)

	// No license-text appendix without the flag.
	for _, c := range rec.calls {
		if c == "heading1:License Texts" {
			t.Error("unexpected license-text appendix")
		}
	}
}

func TestEmitSummaryParagraph(t *testing.T) {
	s := testSBOM()
	sum, diag := aggregateTestSBOM(t, s)

	rec := &recorder{}
	if err := Emit(rec, s, sum, diag, Options{SourceFile: "/tmp/demo-sbom.json"}, ""); err != nil {
		t.Fatal(err)
	}

	summary := rec.calls[1]
	for _, want := range []string{
		"SBOM File: demo-sbom.json",
		"SBOM Type: CycloneDX",
		"Version: 1.6",
		"Packages: 2",
		"Relationships: 0",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary paragraph missing %q:\n%s", want, summary)
		}
	}
}

func TestEmitResolvesPackageLicenses(t *testing.T) {
	s := testSBOM()
	sum, diag := aggregateTestSBOM(t, s)

	rec := &recorder{}
	if err := Emit(rec, s, sum, diag, Options{SourceFile: "x.json"}, ""); err != nil {
		t.Fatal(err)
	}

	var pkgB string
	for i, c := range rec.calls {
		if c == "heading2:Package: pkg-b@2.0" && i+1 < len(rec.calls) {
			pkgB = rec.calls[i+1]
		}
	}
	if !strings.Contains(pkgB, "License id(s) or text: Apache-2.0") {
		t.Errorf("package detail did not resolve synonym:\n%s", pkgB)
	}
}

func TestEmitLicenseTextAppendix(t *testing.T) {
	s := testSBOM()
	sum, diag := aggregateTestSBOM(t, s)
	sum.Entries["MIT"].Text = "the mit license text"

	rec := &recorder{}
	err := Emit(rec, s, sum, diag, Options{SourceFile: "x.json", IncludeLicenseText: true}, "")
	if err != nil {
		t.Fatal(err)
	}

	assertSubsequence(t, rec.calls, []string{
		"heading1:License Texts",
		// Entries sorted by id ascending: Apache-2.0 before MIT.
		"heading2:Apache-2.0",
		"small:No license text for id Apache-2.0",
		"heading2:MIT",
		"small:the mit license text",
		"heading1:Component Type Summary",
	})
}

func TestEmitAppendixSkipsSentinelsAndTruncates(t *testing.T) {
	longID := strings.Repeat("L", 80)
	sum := &license.Summary{
		Entries: map[string]*license.Entry{
			"UNKNOWN":     {ID: "UNKNOWN"},
			"NOASSERTION": {ID: "NOASSERTION"},
			"":            {ID: ""},
			longID:        {ID: longID, Text: "text"},
		},
		TypeCounts: map[string]int{},
	}
	diag := license.NewDiagnostics()

	rec := &recorder{}
	s := &model.SBOM{Document: model.Document{Type: "SPDX"}}
	err := Emit(rec, s, sum, diag, Options{SourceFile: "x.json", IncludeLicenseText: true}, "")
	if err != nil {
		t.Fatal(err)
	}

	var headings []string
	for _, c := range rec.calls {
		if strings.HasPrefix(c, "heading2:") {
			headings = append(headings, strings.TrimPrefix(c, "heading2:"))
		}
	}
	if len(headings) != 1 {
		t.Fatalf("appendix headings = %v, want exactly one", headings)
	}
	if len(headings[0]) != 50 || !strings.HasSuffix(headings[0], "...") {
		t.Errorf("id not truncated to 50 with ellipsis: %q", headings[0])
	}
}

func TestEmitTypeTableSortedByCount(t *testing.T) {
	sum := &license.Summary{
		Entries:    map[string]*license.Entry{},
		TypeCounts: map[string]int{"library": 5, "application": 1, "container": 3},
	}
	diag := license.NewDiagnostics()

	rec := &recorder{}
	s := &model.SBOM{Document: model.Document{Type: "SPDX"}}
	if err := Emit(rec, s, sum, diag, Options{SourceFile: "x.json"}, ""); err != nil {
		t.Fatal(err)
	}

	assertSubsequence(t, rec.calls, []string{
		"table:Type,Count",
		"row:library,5",
		"row:container,3",
		"row:application,1",
		"showtable",
	})
}

func assertSubsequence(t *testing.T, calls, want []string) {
	t.Helper()
	i := 0
	for _, c := range calls {
		if i < len(want) && c == want[i] {
			i++
		}
	}
	if i != len(want) {
		t.Errorf("missing call %q in order; recorded calls:\n%s", want[i], strings.Join(calls, "\n"))
	}
}
