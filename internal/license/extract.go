package license

import (
	"fmt"

	"github.com/georgkoester/sbom2doc/internal/model"
)

// NotKnown is the sentinel produced when a record carries no license
// information at all.
const NotKnown = "NOT KNOWN"

// ExtractLicenses returns the ordered license references of a record. The
// structured license list wins when it yields at least one usable entry
// (id preferred over name over text); otherwise the single concluded
// license is used, defaulting to NotKnown. Producing the sentinel records
// the package in the missing-license diagnostic set.
func ExtractLicenses(rec model.Record, diag *Diagnostics) []string {
	var refs []string
	for _, c := range rec.LicenseList() {
		switch {
		case c.ID != "":
			refs = append(refs, c.ID)
		case c.Name != "":
			refs = append(refs, c.Name)
		case c.Text != "":
			refs = append(refs, c.Text)
		}
	}
	if len(refs) > 0 {
		return refs
	}

	concluded := rec.ConcludedLicense()
	if concluded == "" {
		concluded = NotKnown
	}
	if concluded == NotKnown {
		diag.AddMissingLicense(recordName(rec))
	}
	return []string{concluded}
}

// ExtractCopyright returns the copyright text of a record, or a search
// placeholder when none is present. Producing the placeholder records the
// package in the missing-copyright diagnostic set.
func ExtractCopyright(rec model.Record, diag *Diagnostics) string {
	if c := rec.Copyright(); c != "" {
		return c
	}
	name := recordName(rec)
	diag.AddMissingCopyright(name)
	return fmt.Sprintf("Not extracted, please search %s", name)
}

func recordName(rec model.Record) string {
	if n := rec.RecordName(); n != "" {
		return n
	}
	return "(package name missing)"
}
