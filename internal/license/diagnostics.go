package license

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Diagnostics collects the missing-data observations of one document
// generation run. Construct one per invocation and pass it by reference;
// nothing here is process-wide.
type Diagnostics struct {
	missingLicense   *orderedSet // package names with no license information
	missingCopyright *orderedSet // package names with no copyright text
	missingText      *orderedSet // license ids with no license text
}

// NewDiagnostics returns an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		missingLicense:   newOrderedSet(),
		missingCopyright: newOrderedSet(),
		missingText:      newOrderedSet(),
	}
}

func (d *Diagnostics) AddMissingLicense(pkg string)   { d.missingLicense.add(pkg) }
func (d *Diagnostics) AddMissingCopyright(pkg string) { d.missingCopyright.add(pkg) }
func (d *Diagnostics) AddMissingText(id string)       { d.missingText.add(id) }

// MissingLicense returns the package names recorded without license info.
func (d *Diagnostics) MissingLicense() []string { return d.missingLicense.values() }

// MissingCopyright returns the package names recorded without copyright.
func (d *Diagnostics) MissingCopyright() []string { return d.missingCopyright.values() }

// MissingText returns the license ids recorded without license text.
func (d *Diagnostics) MissingText() []string { return d.missingText.values() }

// Empty reports whether nothing was collected.
func (d *Diagnostics) Empty() bool {
	return len(d.missingLicense.values()) == 0 &&
		len(d.missingCopyright.values()) == 0 &&
		len(d.missingText.values()) == 0
}

// WriteReports persists one CSV per non-empty diagnostic set into dir.
// Filenames embed a timestamp with colons stripped and the sub-second
// fraction dropped. An existing file of the same name is an error for that
// file only; remaining reports are still attempted. Returns the paths
// written.
func (d *Diagnostics) WriteReports(dir string, now time.Time) ([]string, error) {
	stamp := now.Format("2006-01-02T150405")

	reports := []struct {
		name   string
		header []string
		keys   []string
	}{
		{
			name:   fmt.Sprintf("packages_missing_license_info-%s.csv", stamp),
			header: []string{"package id", "license id"},
			keys:   d.missingLicense.values(),
		},
		{
			name:   fmt.Sprintf("packages_missing_copyright_info-%s.csv", stamp),
			header: []string{"package id", "copyright info"},
			keys:   d.missingCopyright.values(),
		},
		{
			name:   fmt.Sprintf("license_ids_missing_text-%s.csv", stamp),
			header: []string{"license id", "original id synonym", "license text"},
			keys:   d.missingText.values(),
		},
	}

	var written []string
	var firstErr error
	for _, r := range reports {
		if len(r.keys) == 0 {
			continue
		}
		path := filepath.Join(dir, r.name)
		if err := writeCSV(path, r.header, r.keys); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		written = append(written, path)
	}
	return written, firstErr
}

// writeCSV creates path exclusively (no silent overwrite) with a header row
// and one row per key; the remaining columns are left empty for manual
// completion.
func writeCSV(path string, header, keys []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating diagnostic report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing diagnostic header: %w", err)
	}
	for _, k := range keys {
		row := make([]string, len(header))
		row[0] = k
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing diagnostic row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// orderedSet keeps first-insertion order and ignores duplicates.
type orderedSet struct {
	seen map[string]struct{}
	keys []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}}
}

func (s *orderedSet) add(k string) {
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.keys = append(s.keys, k)
}

func (s *orderedSet) values() []string { return s.keys }
