package license

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/georgkoester/sbom2doc/internal/docbuilder"
	"github.com/georgkoester/sbom2doc/internal/model"
)

// NoAssertion is the SPDX sentinel for "no claim made".
const NoAssertion = "NOASSERTION"

// Entry is one grouped license keyed by its resolved identifier (or by the
// unresolved expression/raw value when resolution was skipped). At most one
// license text is retained per id: the first-registered text wins and later
// conflicting texts are logged and dropped.
type Entry struct {
	ID    string
	Text  string // empty = no text known
	Count int    // total raw references resolved to this id
}

// Summary is the result of one aggregation run.
type Summary struct {
	// Entries grouped by resolved id, in first-registered order over the
	// sorted distinct raw values (deterministic for a given input set).
	Entries map[string]*Entry
	// Frequency counts every raw license reference across packages and
	// files; the counts sum to the total number of references collected.
	Frequency map[string]int
	// TypeCounts counts package component types.
	TypeCounts map[string]int
	// Suppliers lists the supplier of every package that names one.
	Suppliers []string
	// PackagesValid is false when any package misses a minimum element.
	PackagesValid bool
}

// SortedEntries returns the grouped entries ordered by id, ascending.
func (s *Summary) SortedEntries() []*Entry {
	out := make([]*Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Aggregator collects, resolves and reconciles license references.
type Aggregator struct {
	log     zerolog.Logger
	diag    *Diagnostics
	resolve func(string) string
}

// NewAggregator returns an aggregator reporting into diag.
func NewAggregator(log zerolog.Logger, diag *Diagnostics) *Aggregator {
	return &Aggregator{log: log, diag: diag, resolve: Resolve}
}

// Aggregate runs the reconciliation pipeline over all packages and files:
// collect every reference, count, classify, resolve, group and
// conflict-check. Enrichment with fetched license text is a separate step
// (EnrichTexts) so callers can skip it.
func (a *Aggregator) Aggregate(packages []model.Package, files []model.File) *Summary {
	var refs []string
	for _, p := range packages {
		refs = append(refs, ExtractLicenses(p, a.diag)...)
	}
	for _, f := range files {
		refs = append(refs, ExtractLicenses(f, a.diag)...)
	}

	sorted := make([]string, len(refs))
	copy(sorted, refs)
	sort.Strings(sorted)

	freq := make(map[string]int, len(sorted))
	for _, r := range sorted {
		freq[r]++
	}

	for _, r := range distinct(sorted) {
		a.log.Debug().Int("count", freq[r]).Str("license", docbuilder.EnsureLen(r, 200)).Msg("license reference")
	}

	entries := map[string]*Entry{}
	for _, raw := range distinct(sorted) {
		if raw == "" || raw == NotKnown {
			continue
		}

		kind := Classify(raw)

		var text string
		key := raw
		switch kind {
		case KindTextBlob:
			text = raw
			key = a.resolve(raw)
		case KindExpression:
			// Sub-expression semantics are not evaluated; keep the
			// expression as its own key.
			a.log.Warn().Str("expression", raw).Msg("license expression found, not fully supported")
		default:
			key = a.resolve(raw)
		}
		if key != raw {
			a.log.Debug().Str("raw", docbuilder.EnsureLen(raw, 20)).Str("resolved", key).Msg("resolved license reference")
		}

		existing, ok := entries[key]
		if !ok {
			entries[key] = &Entry{ID: key, Text: text, Count: freq[raw]}
			continue
		}
		existing.Count += freq[raw]
		if text == "" {
			continue
		}
		if existing.Text == "" {
			existing.Text = text
			continue
		}
		if existing.Text != text {
			// First-registered text wins.
			a.log.Warn().Str("id", key).Msg("conflict between two different license text versions")
			a.log.Debug().Str("id", key).Str("kept", existing.Text).Str("dropped", text).Msg("license text conflict detail")
		}
	}

	typeCounts := map[string]int{}
	var suppliers []string
	packagesValid := true
	for _, p := range packages {
		typeCounts[p.Type]++
		if p.Supplier != "" {
			suppliers = append(suppliers, p.Supplier)
		}
		if !p.Valid() {
			packagesValid = false
		}
	}

	return &Summary{
		Entries:       entries,
		Frequency:     freq,
		TypeCounts:    typeCounts,
		Suppliers:     suppliers,
		PackagesValid: packagesValid,
	}
}

// EnrichTexts back-fills license text for grouped entries that lack one.
// The SPDX lookup is tried first, then the caller-supplied override table
// (keyed by upper-cased id). Entries that cannot name a fetchable id
// (expressions, URLs, ids with whitespace, over-long keys, NOASSERTION)
// are skipped. Per-id failures are independent and non-fatal; ids left
// without text are recorded in the missing-text diagnostic set.
func (a *Aggregator) EnrichTexts(sum *Summary, fetcher TextFetcher, overrides map[string]string) {
	for _, e := range sum.SortedEntries() {
		if e.Text != "" || e.ID == NoAssertion {
			continue
		}
		if len(e.ID) > textBlobMinLen {
			a.log.Debug().Int("length", len(e.ID)).Msg("ignore long license key when getting texts")
			continue
		}
		if Classify(e.ID) == KindExpression {
			a.log.Debug().Str("id", e.ID).Msg("ignore license expression when getting text")
			continue
		}

		id := strings.TrimSpace(e.ID)
		if strings.ContainsAny(id, " \t") {
			a.log.Debug().Str("id", id).Msg("ignore license id with space when querying spdx text")
			continue
		}
		if strings.HasPrefix(id, "http") {
			continue
		}

		if fetcher != nil {
			text, err := fetcher.FetchText(id)
			if err == nil {
				e.Text = text
				continue
			}
			a.log.Info().Str("id", id).Err(err).Msg("no license text found in SPDX db")
		}

		if text, ok := overrides[strings.ToUpper(id)]; ok {
			e.Text = text
			continue
		}

		a.log.Info().Str("id", id).Msg("no license text found")
		a.diag.AddMissingText(e.ID)
	}
}

func distinct(sorted []string) []string {
	var out []string
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
